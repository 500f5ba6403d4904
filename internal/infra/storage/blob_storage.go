package storage

import (
	"context"
	"io"

	"ecommerce/internal/domain/service"
	"ecommerce/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStorage stores images in any bucket gocloud.dev can open by URL.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the bucket at bucketURL.
func NewBlobStorage(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStorage, error) {
	if bucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open bucket")
	}

	return &BlobStorage{bucket: bucket, publicBaseURL: publicBaseURL}, nil
}

func (s *BlobStorage) Upload(ctx context.Context, key string, body io.Reader, _ int64, contentType string) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open object writer")
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write object")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "commit object")
	}

	return publicURL(s.publicBaseURL, key), nil
}

func (s *BlobStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "open object")
	}

	return &service.StoredImage{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
