package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/errors"
)

// RequireOwner checks that the user ID in the URL path matches the
// authenticated identity. This guards against a mismatched path parameter
// before any handler or service code runs; the service layer's owner-scoped
// queries are the second line of defense.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			rejectUnauthorized(c)
			return
		}

		uid, err := strconv.ParseUint(c.Param("uid"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			c.Abort()
			return
		}

		if uid != ident.UserID {
			apierrors.Forbidden(c, "Access denied - you can only access your own tasks")
			c.Abort()
			return
		}

		c.Next()
	}
}
