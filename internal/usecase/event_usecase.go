package usecase

import (
	"context"

	"ecommerce/internal/domain/service"
)

// EventUsecase reacts to catalog events delivered to the worker.
type EventUsecase interface {
	// HandleProductEvent processes one event. Errors wrapping a validation
	// failure are permanent; any other error may succeed on redelivery.
	HandleProductEvent(ctx context.Context, event *service.ProductEvent) error
}
