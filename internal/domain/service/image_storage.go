package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned by ImageStorage.Open for unknown keys.
var ErrImageNotFound = errors.New("image not found")

// ErrStorageDisabled is returned when no storage provider is configured.
var ErrStorageDisabled = errors.New("image storage disabled")

// StoredImage is an opened image object.
type StoredImage struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage keeps product images in an object store.
type ImageStorage interface {
	// Upload stores the image under key and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	// Open streams a stored image. The caller closes Body.
	Open(ctx context.Context, key string) (*StoredImage, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
