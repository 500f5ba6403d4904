package service

import (
	"context"
	"time"
)

// ProductEventType names a catalog event.
type ProductEventType string

const (
	ProductCreated   ProductEventType = "product.created"
	ProductUpdated   ProductEventType = "product.updated"
	ProductDeleted   ProductEventType = "product.deleted"
	ProductPurchased ProductEventType = "product.purchased"
)

// ProductEvent is published after a product changes.
type ProductEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       ProductEventType `json:"type"`
	ProductID  int64            `json:"product_id,omitempty"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity,omitempty"` // Units bought, purchase events only
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProductEvent publishes a catalog event for downstream consumers
	PublishProductEvent(ctx context.Context, event *ProductEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
