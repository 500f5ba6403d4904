package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"ecommerce/config"
	"ecommerce/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBlobStorage(ctx, "mem://", "https://cdn.example.com/images/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	url, err := storage.Upload(ctx, "products/a.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/a.png", url)

	img, err := storage.Open(ctx, "products/a.png")
	require.NoError(t, err)
	body, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	require.NoError(t, img.Body.Close())
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, int64(9), img.Size)

	require.NoError(t, storage.Delete(ctx, "products/a.png"))
	_, err = storage.Open(ctx, "products/a.png")
	assert.ErrorIs(t, err, service.ErrImageNotFound)

	assert.NoError(t, storage.Delete(ctx, "products/a.png"))
}

func TestBlobStorage_FileBucket(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBlobStorage(ctx, "file://"+t.TempDir(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	url, err := storage.Upload(ctx, "b.jpg", strings.NewReader("jpg"), 3, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/products/images/b.jpg", url)
}

func TestNewBlobStorage_RequiresURL(t *testing.T) {
	_, err := NewBlobStorage(context.Background(), "", "")
	assert.Error(t, err)
}

func TestNewMinioStorage_Validation(t *testing.T) {
	_, err := NewMinioStorage(config.MinioConfig{}, "")
	assert.Error(t, err)

	_, err = NewMinioStorage(config.MinioConfig{Endpoint: "localhost:9000"}, "")
	assert.Error(t, err)

	_, err = NewMinioStorage(config.MinioConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "")
	assert.Error(t, err)

	storage, err := NewMinioStorage(config.MinioConfig{
		Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "images",
	}, "http://localhost:9000/images")
	require.NoError(t, err)
	assert.Equal(t, "images", storage.bucket)
}

func TestDisabledStorage(t *testing.T) {
	ctx := context.Background()
	var storage service.ImageStorage = disabledStorage{}

	_, err := storage.Upload(ctx, "k", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, service.ErrStorageDisabled)

	_, err = storage.Open(ctx, "k")
	assert.ErrorIs(t, err, service.ErrImageNotFound)

	assert.NoError(t, storage.Delete(ctx, "k"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "/api/v1/products/images/k.png", publicURL("", "k.png"))
	assert.Equal(t, "http://cdn/k.png", publicURL("http://cdn/", "k.png"))
}
