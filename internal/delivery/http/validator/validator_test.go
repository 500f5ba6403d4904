package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `form:"price" validate:"gte=0"`
	Quantity int     `param:"quantity" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "Mug", Price: 1, Quantity: 1}))

	err := v.Validate(&sample{Price: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "price must be at least 0")
	assert.Contains(t, err.Error(), "quantity must be greater than 0")
}
