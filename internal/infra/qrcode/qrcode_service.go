package qrcode

import (
	"encoding/json"
	"strconv"
	"strings"

	"ecommerce/config"
	"ecommerce/internal/domain/entity"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	productLabelType = "product"
	defaultSize      = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ProductLabel is the JSON payload encoded in a product QR code
type ProductLabel struct {
	Type      string `json:"type"`
	ProductID int64  `json:"product_id"`
	SKU       string `json:"sku,omitempty"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	baseURL := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) label(product *entity.Product) ProductLabel {
	l := ProductLabel{
		Type:      productLabelType,
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
	}
	if s.baseURL != "" {
		l.URL = s.baseURL + "/" + strconv.FormatInt(product.ID, 10)
	}

	return l
}

// GenerateProductQR renders the product label as a PNG
func (s *qrcodeService) GenerateProductQR(product *entity.Product) ([]byte, error) {
	if product == nil {
		return nil, errors.New("product is required")
	}

	jsonData, err := json.Marshal(s.label(product))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR parses scanned label content and returns the product ID
func (s *qrcodeService) ParseProductQR(qrData string) (int64, error) {
	var data ProductLabel
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != productLabelType {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ProductID <= 0 {
		return 0, errors.Errorf("invalid product ID: %d", data.ProductID)
	}

	return data.ProductID, nil
}
