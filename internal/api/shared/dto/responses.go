package dto

import (
	"time"

	"github.com/rives-io/rives-aggregator/internal/store"
)

// PaginatedResponse is one window of a listing. Offset is the offset of the
// next page and is omitted on the last page.
type PaginatedResponse[T any] struct {
	Items  []T     `json:"items"`
	Total  uint64  `json:"total"`
	Offset *uint64 `json:"offset,omitempty"`
}

// UpsertResponse is the stored row after an entity write
type UpsertResponse[T any] struct {
	Outcome string `json:"outcome"`
	Row     *T     `json:"row"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// MapPage converts a store page into a response, mapping every item
func MapPage[S any, T any](page *store.Page[S], mapItem func(S) T) *PaginatedResponse[T] {
	items := make([]T, len(page.Items))
	for i, item := range page.Items {
		items[i] = mapItem(item)
	}

	return &PaginatedResponse[T]{
		Items:  items,
		Total:  page.Total,
		Offset: page.NextOffset,
	}
}

// Identity returns an item unchanged, for pages served as stored
func Identity[T any](item T) T {
	return item
}

// MapUpsertResult converts a store upsert result into a response
func MapUpsertResult[T any](result *store.UpsertResult[T]) *UpsertResponse[T] {
	return &UpsertResponse[T]{
		Outcome: result.Outcome.String(),
		Row:     result.Row,
	}
}
