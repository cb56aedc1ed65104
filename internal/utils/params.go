// internal/utils/params.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLimitParam reads an optional "limit" query parameter and clamps it to
// the configured result cap. Listings are capped, not paginated: the
// upstream catalog used to return everything unbounded, which does not
// survive large catalogs.
func GetLimitParam(c *gin.Context, maxResults int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(maxResults)))
	if err != nil || limit < 1 || limit > maxResults {
		return maxResults
	}
	return limit
}
