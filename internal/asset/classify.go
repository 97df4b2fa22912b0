package asset

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimeJPEG        = "image/jpeg"
	MimePNG         = "image/png"
	MimeJP2         = "image/jp2"
	MimeGIF         = "image/gif"
	MimeWEBP        = "image/webp"
	MimeOctetStream = "application/octet-stream"
)

type signature struct {
	prefix   []byte
	mimeType string
}

var signatures = []signature{
	{prefix: []byte{0xFF, 0xD8, 0xFF}, mimeType: MimeJPEG},
	{prefix: []byte{0x89, 0x50, 0x4E, 0x47}, mimeType: MimePNG},
	{prefix: []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50}, mimeType: MimeJP2},
	{prefix: []byte("GIF8"), mimeType: MimeGIF},
}

// Classify returns the content type of an image payload by matching known
// signatures. Anything else is labelled application/octet-stream.
func Classify(data []byte) string {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig.prefix) {
			return sig.mimeType
		}
	}

	if isWEBP(data) {
		return MimeWEBP
	}

	return MimeOctetStream
}

// IsImage reports whether data looks like an image of any format, including
// ones Classify does not label
func IsImage(data []byte) bool {
	if Classify(data) != MimeOctetStream {
		return true
	}
	if len(data) == 0 {
		return false
	}
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

// isWEBP matches a RIFF container whose form type at offset 8 is WEBP
func isWEBP(data []byte) bool {
	return len(data) >= 12 &&
		bytes.HasPrefix(data, []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP"))
}
