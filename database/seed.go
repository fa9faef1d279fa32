package database

import (
	"log"
	"time"

	"github.com/potatoco/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData loads a small set of sample records for local development.
// Seeding is skipped when ledger data already exists.
func SeedData(db *gorm.DB) error {
	var count int64
	db.Model(&models.SeedBatch{}).Count(&count)
	if count > 0 {
		log.Println("Database already contains seed batches, skipping seed")
		return nil
	}

	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	dec := func(value string) decimal.Decimal {
		d, _ := decimal.NewFromString(value)
		return d
	}

	batches := []models.SeedBatch{
		{Variety: models.VarietyRusset, QuantityKg: dec("1200.00"), Supplier: "Highland Seed Co", ImportDate: date("2026-03-02"), CostPerKg: dec("1.85")},
		{Variety: models.VarietyYukon, QuantityKg: dec("800.00"), Supplier: "Golden Fields Ltd", ImportDate: date("2026-03-15"), CostPerKg: dec("2.10")},
		{Variety: models.VarietyRed, QuantityKg: dec("500.00"), Supplier: "Highland Seed Co", ImportDate: date("2026-04-01"), CostPerKg: dec("1.95")},
	}
	if err := db.Create(&batches).Error; err != nil {
		return err
	}

	actualYield := dec("14200.00")
	plantings := []models.PlantingRecord{
		{FieldName: "North Field", SeedBatchID: batches[0].ID, DatePlanted: date("2026-03-20"), ExpectedYieldKg: dec("15000.00"), ActualYieldKg: &actualYield, Status: models.PlantingStatusHarvested},
		{FieldName: "River Plot", SeedBatchID: batches[1].ID, DatePlanted: date("2026-04-05"), ExpectedYieldKg: dec("9500.00"), Status: models.PlantingStatusGrowing},
	}
	if err := db.Create(&plantings).Error; err != nil {
		return err
	}

	sales := []models.Sale{
		{CustomerName: "Fresh Mart Wholesale", CustomerEmail: "orders@freshmart.example", Date: date("2026-07-10"), Variety: "Russet Burbank", QuantityKg: dec("2500.00"), PricePerKg: dec("3.40"), PaymentStatus: models.PaymentStatusPaid},
		{CustomerName: "City Bistro Group", Date: date("2026-08-02"), Variety: "Yukon Gold", QuantityKg: dec("400.00"), PricePerKg: dec("4.10"), PaymentStatus: models.PaymentStatusPending},
	}
	for i := range sales {
		if err := db.Create(&sales[i]).Error; err != nil {
			return err
		}
	}

	expiry := date("2026-11-30")
	items := []models.Inventory{
		{Variety: "Russet Burbank", QuantityKg: dec("8400.00"), QualityGrade: models.QualityPremium, StorageLocation: "Cold Store A", ExpiryDate: &expiry},
		{Variety: "Yukon Gold", QuantityKg: dec("42.50"), QualityGrade: models.QualityStandard, StorageLocation: "Cold Store B"},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	expenses := []models.Expense{
		{Description: "Spring seed purchase", Amount: dec("2220.00"), Date: date("2026-03-02"), Category: models.ExpenseSeeds, Supplier: "Highland Seed Co"},
		{Description: "Cold store electricity", Amount: dec("640.00"), Date: date("2026-07-01"), Category: models.ExpenseUtilities, IsRecurring: true},
	}
	if err := db.Create(&expenses).Error; err != nil {
		return err
	}

	log.Println("Sample data created")
	return nil
}
