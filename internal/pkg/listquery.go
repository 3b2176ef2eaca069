package pkg

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListQuery carries the search term and page number of a list request.
// The page size is fixed by the list engine; clients cannot vary it.
type ListQuery struct {
	Search string
	Page   int
}

// ParseListQuery extracts the search term and page number from query params.
// Invalid or missing page values default to 1; the list engine clamps
// out-of-range pages against the filtered set.
func ParseListQuery(c *gin.Context) ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	return ListQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
	}
}
