package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rives-io/rives-aggregator/internal/api/shared/constants"
	"github.com/rives-io/rives-aggregator/internal/store"
)

// PageQueryParams holds the pagination parameters shared by every listing
type PageQueryParams struct {
	Limit  int    `form:"limit,default=50"`
	Offset uint64 `form:"offset,default=0"`
}

// ListNotificationsQueryParams holds query parameters for GET /agg/notifications/:address
type ListNotificationsQueryParams struct {
	PageQueryParams
	Unread *bool `form:"unread"`
}

// ParsePageQuery parses pagination parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &params, nil
}

// ParseListNotificationsQuery parses query parameters for GET /agg/notifications/:address
func ParseListNotificationsQuery(c *gin.Context) (*ListNotificationsQueryParams, error) {
	var params ListNotificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &params, nil
}

// Validate rejects a negative limit and caps it at the maximum page size
func (p *PageQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", p.Limit)
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
	return nil
}

// PageRequest converts the parameters to a store page request
func (p *PageQueryParams) PageRequest() store.PageRequest {
	return store.PageRequest{Limit: p.Limit, Offset: p.Offset}
}

// parseNotificationID parses the :id path parameter
func parseNotificationID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid notification id: %q", c.Param("id"))
	}
	return id, nil
}
