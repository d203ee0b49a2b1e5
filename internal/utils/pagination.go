package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// GetPaginationParams extracts and bounds the limit/offset query parameters.
// Out-of-range or unparsable values fall back to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageLimit)))
	if err != nil || limit < constants.MinPageLimit || limit > constants.MaxPageLimit {
		limit = constants.DefaultPageLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}
