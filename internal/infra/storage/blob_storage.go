// Package storage keeps uploaded profile files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"vitae/config"
	"vitae/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket     *blob.Bucket
	publicPath string
}

// New opens the bucket named by upload.bucketUrl and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Upload

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Upload bucket opened", slog.String("publicPath", cfg.PublicPath))

	return NewBlobStorage(bucket, cfg.PublicPath), nil
}

// NewBlobStorage wraps an open bucket. publicPath is the URL prefix the files are served under.
func NewBlobStorage(bucket *blob.Bucket, publicPath string) service.FileStorage {
	return &blobStorage{
		bucket:     bucket,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, content io.Reader) error {
	if !validKey(key) {
		return errors.Errorf("invalid object key %q", key)
	}

	err := s.bucket.Upload(ctx, key, content, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	if !validKey(key) {
		return nil, service.ErrObjectNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return &service.StoredObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return nil
	}

	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobStorage) URL(key string) string {
	if key == "" {
		return ""
	}

	return path.Join(s.publicPath, key)
}

// validKey accepts relative, already-clean slash paths only.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}

	return path.Clean(key) == key && !strings.HasPrefix(key, "../") && key != ".."
}
