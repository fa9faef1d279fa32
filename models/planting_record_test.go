package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestYieldEfficiency(t *testing.T) {
	expected := decimal.RequireFromString("15000.00")

	t.Run("undefined until actual yield is recorded", func(t *testing.T) {
		record := &PlantingRecord{ExpectedYieldKg: expected}
		if record.YieldEfficiency() != nil {
			t.Fatal("expected nil efficiency without an actual yield")
		}
	})

	t.Run("exactly 100 when actual equals expected", func(t *testing.T) {
		actual := decimal.RequireFromString("15000.00")
		record := &PlantingRecord{ExpectedYieldKg: expected, ActualYieldKg: &actual}
		efficiency := record.YieldEfficiency()
		if efficiency == nil {
			t.Fatal("expected an efficiency value")
		}
		if !efficiency.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("efficiency = %s, want 100", efficiency)
		}
	})

	t.Run("partial harvest", func(t *testing.T) {
		actual := decimal.RequireFromString("12000.00")
		record := &PlantingRecord{ExpectedYieldKg: expected, ActualYieldKg: &actual}
		efficiency := record.YieldEfficiency()
		if efficiency == nil {
			t.Fatal("expected an efficiency value")
		}
		if !efficiency.Equal(decimal.NewFromInt(80)) {
			t.Fatalf("efficiency = %s, want 80", efficiency)
		}
	})
}

func TestSeedBatchDeleteCascades(t *testing.T) {
	db := openTestDB(t)

	batch := &SeedBatch{
		Variety:    VarietyRusset,
		QuantityKg: decimal.RequireFromString("1200.00"),
		Supplier:   "Highland Seed Co",
		ImportDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CostPerKg:  decimal.RequireFromString("1.85"),
	}
	if err := db.Create(batch).Error; err != nil {
		t.Fatalf("create seed batch: %v", err)
	}

	for _, field := range []string{"North Field", "River Plot"} {
		record := &PlantingRecord{
			FieldName:       field,
			SeedBatchID:     batch.ID,
			DatePlanted:     time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			ExpectedYieldKg: decimal.RequireFromString("9000.00"),
			Status:          PlantingStatusPlanted,
		}
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("create planting record: %v", err)
		}
	}

	if err := db.Delete(&SeedBatch{}, batch.ID).Error; err != nil {
		t.Fatalf("delete seed batch: %v", err)
	}

	var remaining int64
	db.Model(&PlantingRecord{}).Where("seed_batch_id = ?", batch.ID).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("planting records remaining after cascade delete: %d", remaining)
	}
}

func TestSeedBatchTotalCost(t *testing.T) {
	batch := &SeedBatch{
		QuantityKg: decimal.RequireFromString("1200.00"),
		CostPerKg:  decimal.RequireFromString("1.85"),
	}
	want := decimal.RequireFromString("2220.00")
	if !batch.TotalCost().Equal(want) {
		t.Fatalf("total cost = %s, want %s", batch.TotalCost(), want)
	}
}
