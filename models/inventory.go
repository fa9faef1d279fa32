package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock below this many kilograms triggers the low stock warning.
var lowStockThresholdKg = decimal.NewFromInt(50)

// QualityGrade classifies inventory stock quality
type QualityGrade string

const (
	QualityPremium  QualityGrade = "premium"
	QualityStandard QualityGrade = "standard"
	QualitySeconds  QualityGrade = "seconds"
)

var qualityGradeLabels = map[QualityGrade]string{
	QualityPremium:  "Premium",
	QualityStandard: "Standard",
	QualitySeconds:  "Seconds",
}

// Label returns the display name for the grade
func (g QualityGrade) Label() string {
	if label, ok := qualityGradeLabels[g]; ok {
		return label
	}
	return string(g)
}

// QualityGrades lists all quality grades
func QualityGrades() []QualityGrade {
	return []QualityGrade{QualityPremium, QualityStandard, QualitySeconds}
}

// Inventory represents the inventory_items table
type Inventory struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Variety         string          `gorm:"type:varchar(100);not null" json:"variety"`
	QuantityKg      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity_kg"`
	QualityGrade    QualityGrade    `gorm:"type:varchar(20);not null;default:standard" json:"quality_grade"`
	StorageLocation string          `gorm:"type:varchar(100)" json:"storage_location"`
	ExpiryDate      *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName specifies the table name for Inventory
func (Inventory) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the quantity has fallen below the 50 kg threshold
func (i *Inventory) IsLowStock() bool {
	return i.QuantityKg.LessThan(lowStockThresholdKg)
}
