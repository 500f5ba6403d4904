package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"ecommerce/config"
	"ecommerce/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(size int, level, baseURL string) *qrcodeService {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}})

	return svc.(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
	assert.Empty(t, svc.baseURL)
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newService(size, "M", "http://shop.local/api/v1/products/")

		pngBytes, err := svc.GenerateProductQR(&entity.Product{ID: 7, Name: "Widget", SKU: "W-7"})
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateProductQR_NilProduct(t *testing.T) {
	_, err := newService(256, "M", "").GenerateProductQR(nil)
	assert.Error(t, err)
}

func TestQRCodeService_Label(t *testing.T) {
	svc := newService(256, "M", "http://shop.local/api/v1/products/")

	label := svc.label(&entity.Product{ID: 7, Name: "Widget", SKU: "W-7"})

	assert.Equal(t, ProductLabel{
		Type:      "product",
		ProductID: 7,
		SKU:       "W-7",
		Name:      "Widget",
		URL:       "http://shop.local/api/v1/products/7",
	}, label)
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	svc := newService(256, "M", "")

	payload, err := json.Marshal(svc.label(&entity.Product{ID: 12, Name: "Lamp"}))
	require.NoError(t, err)

	id, err := svc.ParseProductQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = svc.ParseProductQR("not json")
	assert.Error(t, err)

	_, err = svc.ParseProductQR(`{"type":"subscription","product_id":1}`)
	assert.Error(t, err)

	_, err = svc.ParseProductQR(`{"type":"product","product_id":0}`)
	assert.Error(t, err)
}
