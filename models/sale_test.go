package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testSale(name string) *Sale {
	return &Sale{
		CustomerName:  name,
		Date:          time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Variety:       "Russet Burbank",
		QuantityKg:    decimal.RequireFromString("250.00"),
		PricePerKg:    decimal.RequireFromString("3.40"),
		PaymentStatus: PaymentStatusPending,
	}
}

func TestSaleInvoiceNumberSequence(t *testing.T) {
	db := openTestDB(t)

	for i := 1; i <= 3; i++ {
		sale := testSale(fmt.Sprintf("Customer %d", i))
		if err := db.Create(sale).Error; err != nil {
			t.Fatalf("create sale %d: %v", i, err)
		}
		want := fmt.Sprintf("INV-%05d", i)
		if sale.InvoiceNumber != want {
			t.Fatalf("sale %d: invoice number = %q, want %q", i, sale.InvoiceNumber, want)
		}
	}
}

func TestSaleInvoiceNumberContinuesFromLastInserted(t *testing.T) {
	db := openTestDB(t)

	preset := testSale("Preset")
	preset.InvoiceNumber = "INV-00042"
	if err := db.Create(preset).Error; err != nil {
		t.Fatalf("create preset sale: %v", err)
	}
	if preset.InvoiceNumber != "INV-00042" {
		t.Fatalf("explicit invoice number was overwritten: %q", preset.InvoiceNumber)
	}

	next := testSale("Next")
	if err := db.Create(next).Error; err != nil {
		t.Fatalf("create next sale: %v", err)
	}
	if next.InvoiceNumber != "INV-00043" {
		t.Fatalf("invoice number = %q, want INV-00043", next.InvoiceNumber)
	}
}

func TestSaleInvoiceNumberUnique(t *testing.T) {
	db := openTestDB(t)

	first := testSale("First")
	first.InvoiceNumber = "INV-00001"
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("create first sale: %v", err)
	}

	duplicate := testSale("Duplicate")
	duplicate.InvoiceNumber = "INV-00001"
	if err := db.Create(duplicate).Error; err == nil {
		t.Fatal("expected unique constraint error for duplicate invoice number")
	}
}

func TestSaleTotalPrice(t *testing.T) {
	sale := &Sale{
		QuantityKg: decimal.RequireFromString("2500.00"),
		PricePerKg: decimal.RequireFromString("3.40"),
	}
	want := decimal.RequireFromString("8500.00")
	if !sale.TotalPrice().Equal(want) {
		t.Fatalf("total price = %s, want %s", sale.TotalPrice(), want)
	}
}
