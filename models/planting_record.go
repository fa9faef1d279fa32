package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlantingStatus tracks a crop from planting through harvest
type PlantingStatus string

const (
	PlantingStatusPlanted   PlantingStatus = "planted"
	PlantingStatusGrowing   PlantingStatus = "growing"
	PlantingStatusReady     PlantingStatus = "ready"
	PlantingStatusHarvested PlantingStatus = "harvested"
	PlantingStatusFailed    PlantingStatus = "failed"
)

var plantingStatusLabels = map[PlantingStatus]string{
	PlantingStatusPlanted:   "Planted",
	PlantingStatusGrowing:   "Growing",
	PlantingStatusReady:     "Ready for Harvest",
	PlantingStatusHarvested: "Harvested",
	PlantingStatusFailed:    "Failed",
}

// Label returns the display name for the status
func (s PlantingStatus) Label() string {
	if label, ok := plantingStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// PlantingStatuses lists all planting statuses
func PlantingStatuses() []PlantingStatus {
	return []PlantingStatus{PlantingStatusPlanted, PlantingStatusGrowing, PlantingStatusReady, PlantingStatusHarvested, PlantingStatusFailed}
}

// PlantingRecord represents the planting_records table.
// Deleting the referenced seed batch cascades to its planting records.
type PlantingRecord struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	FieldName       string           `gorm:"type:varchar(100);not null" json:"field_name"`
	SeedBatchID     uint             `gorm:"not null" json:"seed_batch_id"`
	DatePlanted     time.Time        `gorm:"type:date;not null" json:"date_planted"`
	ExpectedYieldKg decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"expected_yield_kg"`
	ActualYieldKg   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"actual_yield_kg,omitempty"`
	HarvestDate     *time.Time       `gorm:"type:date" json:"harvest_date,omitempty"`
	Status          PlantingStatus   `gorm:"type:varchar(20);not null;default:planted" json:"status"`
	Notes           string           `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`

	// Relationships
	SeedBatch SeedBatch `gorm:"foreignKey:SeedBatchID;constraint:OnDelete:CASCADE" json:"seed_batch,omitempty"`
}

// TableName specifies the table name for PlantingRecord
func (PlantingRecord) TableName() string {
	return "planting_records"
}

// YieldEfficiency returns actual/expected yield as a percentage.
// Nil until the actual yield has been recorded.
func (p *PlantingRecord) YieldEfficiency() *decimal.Decimal {
	if p.ActualYieldKg == nil || p.ExpectedYieldKg.IsZero() {
		return nil
	}
	efficiency := p.ActualYieldKg.Div(p.ExpectedYieldKg).Mul(decimal.NewFromInt(100))
	return &efficiency
}
