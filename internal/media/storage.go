package media

import (
	"context"
	"errors"
	"io"
	"strings"
)

// urlPrefix is the path segment under which images are published; object keys
// are recovered from stored URLs by splitting on it.
const urlPrefix = "/images/"

// ErrUnmanagedURL indicates a URL that was not produced by this store.
var ErrUnmanagedURL = errors.New("url does not reference a managed image")

// Storage persists uploaded product images and addresses them by public URL.
type Storage interface {
	// Save stores the image under name and returns its public URL.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Remove deletes the image a previously returned URL points at.
	Remove(ctx context.Context, url string) error
}

// objectName extracts the stored object name from a public URL.
func objectName(url string) (string, error) {
	_, after, found := strings.Cut(url, urlPrefix)
	if !found || after == "" || strings.Contains(after, "/") {
		return "", ErrUnmanagedURL
	}
	return after, nil
}
