package storage

import (
	"context"
	"io"
	"net/http"
	"strings"

	"ecommerce/config"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage stores images in a MinIO or other S3-compatible bucket.
type MinioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStorage constructs a MinIO client from config.
func NewMinioStorage(cfg config.MinioConfig, publicBaseURL string) (*MinioStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket, publicBaseURL: publicBaseURL}, nil
}

// EnsureBucket creates the configured bucket when it is missing.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}

	return errors.Wrap(s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}), "create bucket")
}

func (s *MinioStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "put object")
	}

	return publicURL(s.publicBaseURL, key), nil
}

// Open stats the object first so a missing key surfaces before streaming starts.
func (s *MinioStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "get object")
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isMinioNotFound(err) {
			return nil, service.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "stat object")
	}

	return &service.StoredImage{
		Body:        obj,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && !isMinioNotFound(err) {
		return errors.Wrap(err, "remove object")
	}

	return nil
}

func isMinioNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)

	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}
