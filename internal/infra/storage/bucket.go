// Package storage keeps image bytes in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the dependencies of the bucket.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it on shutdown.
func NewBucket(params Params) (*blob.Bucket, error) {
	bucket, err := OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Image bucket opened", slog.String("bucket", params.Config.Storage.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// OpenBucket opens a blob URL, or a local directory when no scheme is given.
func OpenBucket(ctx context.Context, location string) (*blob.Bucket, error) {
	if strings.Contains(location, "://") {
		bucket, err := blob.OpenBucket(ctx, location)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", location)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve bucket directory")
	}
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket directory %s", dir)
	}

	return bucket, nil
}
