package storage

import (
	"context"
	"io"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type blobImageStorage struct {
	bucket *blob.Bucket
}

// NewImageStorage adapts a bucket to service.ImageStorage.
func NewImageStorage(bucket *blob.Bucket) service.ImageStorage {
	return &blobImageStorage{bucket: bucket}
}

// Save writes the object in one call.
func (s *blobImageStorage) Save(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write object %s", key)
}

// Open returns a streaming reader over the object.
func (s *blobImageStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, nil
}

// Delete removes the object, ignoring a missing one.
func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
