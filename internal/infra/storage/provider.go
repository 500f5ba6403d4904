// Package storage keeps product images in an object store.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"ecommerce/config"
	"ecommerce/internal/domain/constants"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/errors"

	"go.uber.org/fx"
)

// imagesRoute serves stored images when no public base URL is configured.
const imagesRoute = "/api/v1/products/images/"

// Params defines the dependencies for creating an ImageStorage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// closer is implemented by backends holding connections.
type closer interface {
	Close() error
}

// NewImageStorage selects the backend from config. An empty provider disables uploads.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || strings.TrimSpace(cfg.Provider) == "" {
		params.Logger.Info("Image storage disabled, products use the placeholder image")

		return disabledStorage{}, nil
	}

	var (
		storage service.ImageStorage
		err     error
	)
	switch cfg.Provider {
	case constants.StorageProviderBlob:
		storage, err = NewBlobStorage(context.Background(), cfg.BucketURL, cfg.PublicBaseURL)
	case constants.StorageProviderMinio:
		storage, err = NewMinioStorage(cfg.Minio, cfg.PublicBaseURL)
	default:
		return nil, errors.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "create %s image storage", cfg.Provider)
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if ensurer, ok := storage.(interface{ EnsureBucket(context.Context) error }); ok {
				if err := ensurer.EnsureBucket(ctx); err != nil {
					return errors.Wrap(err, "ensure image bucket")
				}
			}
			params.Logger.Info("Image storage ready", slog.String("provider", cfg.Provider))

			return nil
		},
		OnStop: func(_ context.Context) error {
			if c, ok := storage.(closer); ok {
				return c.Close()
			}

			return nil
		},
	})

	return storage, nil
}

// publicURL joins the base URL and key. Without a base the API image route is used.
func publicURL(baseURL, key string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return imagesRoute + key
	}

	return base + "/" + key
}

type disabledStorage struct{}

func (disabledStorage) Upload(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", service.ErrStorageDisabled
}

func (disabledStorage) Open(context.Context, string) (*service.StoredImage, error) {
	return nil, service.ErrImageNotFound
}

func (disabledStorage) Delete(context.Context, string) error {
	return nil
}
