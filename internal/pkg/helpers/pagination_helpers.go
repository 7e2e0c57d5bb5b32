package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultOffset = 0
)

// ParseLimitOffset extracts and validates limit/offset pagination parameters
// from the request query string. Invalid or out-of-range values fall back to
// the defaults.
func ParseLimitOffset(c *gin.Context) (limit, offset int) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	offsetStr := c.DefaultQuery("offset", strconv.Itoa(DefaultOffset))
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = DefaultOffset
	}

	return limit, offset
}
