package constants

import "github.com/rives-io/rives-aggregator/internal/store"

const (
	DEFAULT_OFFSET  = uint64(0)
	DEFAULT_LIMIT   = store.DefaultPageSize
	MAX_PAGE_SIZE   = store.MaxPageSize
	MAX_UPLOAD_SIZE = int64(5 << 20)

	// IMAGE_FORM_FIELD is the multipart field carrying an uploaded image
	IMAGE_FORM_FIELD = "file"
)
