package store

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	// DefaultPageSize is used when a listing is requested without a limit
	DefaultPageSize = 50
	// MaxPageSize caps the number of rows returned by one listing call
	MaxPageSize = 100
)

// PageRequest is a limit/offset window over a listing
type PageRequest struct {
	Limit  int
	Offset uint64
}

// Page is one window of a listing
type Page[T any] struct {
	Items []T
	// Total is the number of rows across all pages
	Total uint64
	// NextOffset is the offset of the following page, nil on the last page
	NextOffset *uint64
}

// normalize clamps the limit into [1, MaxPageSize]
func (p PageRequest) normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// paginate counts the rows matched by query and scans one window of them.
// order and selects are applied after counting so the count query stays cheap.
func paginate[T any](query *gorm.DB, req PageRequest, selects string, order string) (*Page[T], error) {
	req = req.normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	items := []T{}
	if err := query.Select(selects).
		Order(order).
		Limit(req.Limit).
		Offset(int(req.Offset)). //nolint:gosec,G115
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list rows: %w", err)
	}

	page := &Page[T]{Items: items, Total: uint64(total)} //nolint:gosec,G115
	if next := req.Offset + uint64(len(items)); next < page.Total {
		page.NextOffset = &next
	}

	return page, nil
}
