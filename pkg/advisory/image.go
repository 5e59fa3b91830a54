package advisory

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// MaxImageBytes bounds the decoded size of a screenshot
const MaxImageBytes = 10 << 20

var (
	ErrEmptyImage    = errors.New("image is empty")
	ErrImageTooLarge = errors.New("image exceeds 10MB")
	ErrNotAnImage    = errors.New("content is not an image")
	ErrInvalidBase64 = errors.New("image is not valid base64")
)

// Image is an inline screenshot
type Image struct {
	Data     []byte
	MIMEType string
}

// DecodeImage accepts raw base64 or a data URL (data:image/png;base64,...).
// The MIME type comes from the data URL when present and is sniffed otherwise.
func DecodeImage(encoded string) (Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Image{}, ErrEmptyImage
	}

	declared := ""
	if strings.HasPrefix(encoded, "data:") {
		header, payload, ok := strings.Cut(encoded, ",")
		if !ok {
			return Image{}, ErrInvalidBase64
		}
		meta := strings.TrimPrefix(header, "data:")
		if !strings.HasSuffix(meta, ";base64") {
			return Image{}, ErrInvalidBase64
		}
		declared = strings.TrimSuffix(meta, ";base64")
		encoded = payload
	}

	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxImageBytes+3 {
		return Image{}, ErrImageTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return Image{}, ErrInvalidBase64
		}
	}
	return NewImage(data, declared)
}

// NewImage wraps raw bytes. An empty or generic declared type is replaced by
// the sniffed one; anything that is not image/* is rejected.
func NewImage(data []byte, declared string) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return Image{}, ErrImageTooLarge
	}

	mimeType := strings.ToLower(strings.TrimSpace(declared))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return Image{}, ErrNotAnImage
	}
	return Image{Data: data, MIMEType: mimeType}, nil
}
