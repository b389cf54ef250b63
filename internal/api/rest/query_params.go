package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/driftwave/release-radar/internal/domain"
)

const MAX_PAGE_SIZE = 100

// ListReleasesQueryParams holds query parameters for GET /releases
type ListReleasesQueryParams struct {
	Type   string `form:"type"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// ParseListReleasesQuery parses and caps query parameters for GET /releases
func ParseListReleasesQuery(c *gin.Context) (*ListReleasesQueryParams, error) {
	var params ListReleasesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 || params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Validate checks the parsed query parameters
func (p *ListReleasesQueryParams) Validate() error {
	if p.Type != "" && !domain.ReleaseType(p.Type).Valid() {
		return fmt.Errorf("invalid type: %s", p.Type)
	}
	return nil
}
