package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsLowStockBoundaries(t *testing.T) {
	cases := []struct {
		quantity string
		low      bool
	}{
		{"49.99", true},
		{"50.00", false},
		{"50.01", false},
		{"0.00", true},
	}

	for _, tc := range cases {
		item := &Inventory{QuantityKg: decimal.RequireFromString(tc.quantity)}
		if got := item.IsLowStock(); got != tc.low {
			t.Errorf("IsLowStock(%s) = %v, want %v", tc.quantity, got, tc.low)
		}
	}
}
