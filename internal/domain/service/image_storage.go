package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by ImageStorage when a key holds no object.
var ErrObjectNotFound = errors.New("object not found")

// ImageStorage keeps uploaded image bytes. The catalog only stores the key.
type ImageStorage interface {
	// Save writes data under key, replacing any previous object.
	Save(ctx context.Context, key, contentType string, data []byte) error

	// Open returns a reader for the object under key or ErrObjectNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
