package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a storage key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject describes an object opened for reading.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage stores uploaded profile files under opaque keys.
type FileStorage interface {
	// Put writes the content under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, content io.Reader) error

	// Open returns a reader for the object; the caller closes Body.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public path under which key is served.
	URL(key string) string
}
