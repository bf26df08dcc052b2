// Package form decodes user-submitted recipe images, either inline as
// a base64 data URI or by reference to a remote URL.
package form

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	mhttp "github.com/plateful/plateful/internal/http"
)

const (
	magicNumberSeek = 512
	maxImageBytes   = 20 << 20 // ~ 20 MB
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImage             = errors.New("no image provided")
	ErrInvalidDataURI      = errors.New("invalid data uri")
	ErrImageTooLarge       = errors.New("image too large")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

func fromBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	if len(data) > maxImageBytes {
		return nil, ErrImageTooLarge
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

func ReadFile(file io.ReadCloser) (*File, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	defer func() { _ = file.Close() }()
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return fromBytes(data)
}

// DecodeDataURI decodes "data:image/png;base64,...." payloads. The MIME
// type is sniffed from the decoded bytes, not trusted from the header.
func DecodeDataURI(uri string) (*File, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return fromBytes(data)
}

// FetchImage downloads an image from a remote URL.
func FetchImage(ctx context.Context, client *mhttp.HTTP, url string) (*File, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	if err := mhttp.ExpectStatus2xx(resp); err != nil {
		return nil, err
	}

	return ReadFile(resp.Body)
}

// DecodeImage accepts either a base64 data URI or an http(s) URL.
func DecodeImage(ctx context.Context, client *mhttp.HTTP, value string) (*File, error) {
	switch {
	case value == "":
		return nil, ErrNoImage
	case strings.HasPrefix(value, "data:"):
		return DecodeDataURI(value)
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return FetchImage(ctx, client, value)
	default:
		return nil, ErrInvalidDataURI
	}
}
