package storage

import (
	"context"
	"io"
	"testing"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestImageStorage_SaveOpenDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	storage := NewImageStorage(bucket)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, "abc.png", "image/png", []byte("png-bytes")))

	attrs, err := bucket.Attributes(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	reader, err := storage.Open(ctx, "abc.png")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, storage.Delete(ctx, "abc.png"))
	require.NoError(t, storage.Delete(ctx, "abc.png"))

	_, err = storage.Open(ctx, "abc.png")
	assert.True(t, errors.Is(err, service.ErrObjectNotFound))
}

func TestOpenBucket_LocalDirectory(t *testing.T) {
	dir := t.TempDir() + "/images"

	bucket, err := OpenBucket(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	require.NoError(t, bucket.WriteAll(context.Background(), "k", []byte("v"), nil))
	data, err := bucket.ReadAll(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(data))
}

func TestOpenBucket_URL(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())
}
