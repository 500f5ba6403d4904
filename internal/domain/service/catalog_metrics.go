package service

// PurchaseOutcome labels the result of a purchase attempt.
type PurchaseOutcome string

const (
	PurchaseSucceeded         PurchaseOutcome = "succeeded"
	PurchaseInsufficientStock PurchaseOutcome = "insufficient_stock"
	PurchaseUnknownProduct    PurchaseOutcome = "unknown_product"
)

// CatalogMetrics records business counters for the catalog.
type CatalogMetrics interface {
	RecordPurchase(outcome PurchaseOutcome, quantity int)
	RecordEventPublished(eventType ProductEventType, err error)
}
