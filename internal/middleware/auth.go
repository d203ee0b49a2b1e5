package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/constants"
	apierrors "github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/errors"
)

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and stores the resulting identity in the request context.
// The caller only ever sees a generic 401; the precise failure kind (expired,
// bad signature, malformed, missing claim) goes to the log.
func RequireAuth(codec *auth.TokenCodec, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			rejectUnauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			rejectUnauthorized(c)
			return
		}

		ident, err := codec.Verify(parts[1])
		if err != nil {
			logger.Warn("token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			rejectUnauthorized(c)
			return
		}

		// Re-check expiry against wall-clock time even though the codec
		// already validated it.
		if !ident.ExpiresAt.After(time.Now()) {
			logger.Warn("token past expiry at resolution time",
				zap.Uint64("user_id", ident.UserID),
			)
			rejectUnauthorized(c)
			return
		}

		c.Set(constants.ContextKeyIdentity, ident)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from context
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return nil, false
	}
	ident, ok := v.(*auth.Identity)
	return ident, ok
}

func rejectUnauthorized(c *gin.Context) {
	apierrors.Unauthorized(c, "Could not validate credentials")
	c.Abort()
}
