package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{name: "whole dollars", price: 20.00, want: 2000},
		{name: "cents", price: 12.34, want: 1234},
		{name: "rounds up", price: 0.015, want: 2},
		{name: "float artifacts", price: 19.99, want: 1999},
		{name: "zero", price: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToMinorUnits(tt.price))
		})
	}
}

func TestExpandURL(t *testing.T) {
	t.Parallel()

	got := expandURL("https://shop.example.com/order-confirmation/{ORDER_ID}", 17)
	assert.Equal(t, "https://shop.example.com/order-confirmation/17", got)

	// Templates without the placeholder pass through untouched.
	got = expandURL("https://shop.example.com/checkout", 17)
	assert.Equal(t, "https://shop.example.com/checkout", got)
}
