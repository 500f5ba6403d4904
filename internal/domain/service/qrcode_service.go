package service

import "ecommerce/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR renders a PNG label for the product
	GenerateProductQR(product *entity.Product) ([]byte, error)

	// ParseProductQR extracts the product ID from QR code content
	ParseProductQR(qrData string) (int64, error)
}
