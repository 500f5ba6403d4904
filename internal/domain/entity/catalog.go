package entity

import "time"

// Category groups products.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a sellable catalog item.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	ImgURL      string // Public URL of the product image or the placeholder.
	ImgKey      string // Object key in image storage. Empty when the placeholder is used.
	SKU         string
	Stock       int
	CategoryID  int64
	Category    *Category // Loaded on reads, nil on writes.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryName returns the name of the loaded category, if any.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.Name
}

// CategoryOrder selects the ordering of category listings.
type CategoryOrder int

const (
	// CategoryOrderByName sorts categories alphabetically.
	CategoryOrderByName CategoryOrder = iota
	// CategoryOrderByID sorts categories by insertion order.
	CategoryOrderByID
)
