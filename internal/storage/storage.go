package storage

import (
	"context"
	"io"
	"strings"
)

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// Upload writes an object under the given key and returns a publicly
	// resolvable URL for it.
	Upload(ctx context.Context, objectKey string, contentType string, body io.Reader) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ObjectKeyFromURL derives the storage object key for an image URL: the
// trailing path segment of the URL, prefixed with the entity category
// (e.g. "equipment/1718000000.png"). Returns "" when no filename can be
// derived, in which case callers skip the storage delete.
func ObjectKeyFromURL(category, imageURL string) string {
	if imageURL == "" {
		return ""
	}
	fileName := imageURL
	if idx := strings.LastIndex(imageURL, "/"); idx >= 0 {
		fileName = imageURL[idx+1:]
	}
	if fileName == "" {
		return ""
	}
	return category + "/" + fileName
}
