package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedBatch represents the seed_batches table. Rows are immutable
// purchase history: staff record each batch of seed stock as it arrives.
type SeedBatch struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Variety    Variety         `gorm:"type:varchar(100);not null" json:"variety"`
	QuantityKg decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity_kg"`
	Supplier   string          `gorm:"type:varchar(100);not null" json:"supplier"`
	ImportDate time.Time       `gorm:"type:date;not null" json:"import_date"`
	CostPerKg  decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"cost_per_kg"`
	Notes      string          `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TableName specifies the table name for SeedBatch
func (SeedBatch) TableName() string {
	return "seed_batches"
}

// TotalCost returns quantity × cost per kg. Computed on read, never stored.
func (b *SeedBatch) TotalCost() decimal.Decimal {
	return b.QuantityKg.Mul(b.CostPerKg)
}
