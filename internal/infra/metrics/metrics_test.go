package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecommerce/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordPurchase(t *testing.T) {
	m := newMetrics()

	m.RecordPurchase(service.PurchaseSucceeded, 3)
	m.RecordPurchase(service.PurchaseSucceeded, 2)
	m.RecordPurchase(service.PurchaseInsufficientStock, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchases.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchases.WithLabelValues("insufficient_stock")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.unitsSold))
}

func TestMetrics_RecordEventPublished(t *testing.T) {
	m := newMetrics()

	m.RecordEventPublished(service.ProductCreated, nil)
	m.RecordEventPublished(service.ProductCreated, errors.New("broker down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("product.created", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("product.created", "error")))
}

func TestMetrics_Handler(t *testing.T) {
	m, err := New(Params{})
	require.NoError(t, err)

	m.ObserveRequest("/api/v1/products/:id", http.MethodGet, http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `ecommerce_http_requests_total{method="GET",route="/api/v1/products/:id",status="200"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}
