// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecommerce/internal/delivery/context"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/repository"
	"ecommerce/internal/domain/service"

	"github.com/pkg/errors"
)

const eventPublishTimeout = 5 * time.Second

// mapRepositoryError converts repository sentinels into the errors the delivery layer renders.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.WithStack(domainerrors.ErrUserNotFound)
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.WithStack(domainerrors.ErrCategoryNotFound)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.WithStack(domainerrors.ErrProductNotFound)
	default:
		return errors.WithStack(err)
	}
}

// eventNotifier publishes product events on a best-effort basis. A failed publish
// is logged and counted but never fails the request that caused it.
type eventNotifier struct {
	publisher service.EventPublisher
	metrics   service.CatalogMetrics
}

func (n *eventNotifier) notify(ctx context.Context, logger *slog.Logger, event *service.ProductEvent) {
	if n.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	// The event outlives a client that disconnects right after the write.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	err := n.publisher.PublishProductEvent(publishCtx, event)
	if n.metrics != nil {
		n.metrics.RecordEventPublished(event.Type, err)
	}
	if err != nil {
		logger.Warn("Failed to publish product event",
			slog.String("type", string(event.Type)),
			slog.String("name", event.Name),
			slog.Any("error", err),
		)
	}
}
