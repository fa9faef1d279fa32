package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuantityRange is the bucketed order size used on public quote requests
type QuantityRange string

const (
	QuantitySmall  QuantityRange = "small"
	QuantityMedium QuantityRange = "medium"
	QuantityLarge  QuantityRange = "large"
	QuantityBulk   QuantityRange = "bulk"
)

var quantityRangeLabels = map[QuantityRange]string{
	QuantitySmall:  "1-50 kg",
	QuantityMedium: "51-500 kg",
	QuantityLarge:  "501-2000 kg",
	QuantityBulk:   "2000+ kg",
}

// Label returns the display name for the quantity range
func (q QuantityRange) Label() string {
	if label, ok := quantityRangeLabels[q]; ok {
		return label
	}
	return string(q)
}

// QuantityRanges lists all selectable quantity ranges
func QuantityRanges() []QuantityRange {
	return []QuantityRange{QuantitySmall, QuantityMedium, QuantityLarge, QuantityBulk}
}

// ValidQuantityRange reports whether q is a selectable quantity range
func ValidQuantityRange(q QuantityRange) bool {
	_, ok := quantityRangeLabels[q]
	return ok
}

// QuoteStatus tracks a quote request through the sales pipeline
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusQuoted   QuoteStatus = "quoted"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

var quoteStatusLabels = map[QuoteStatus]string{
	QuoteStatusPending:  "Pending",
	QuoteStatusQuoted:   "Quote Sent",
	QuoteStatusAccepted: "Accepted",
	QuoteStatusRejected: "Rejected",
	QuoteStatusExpired:  "Expired",
}

// Label returns the display name for the status
func (s QuoteStatus) Label() string {
	if label, ok := quoteStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// QuoteStatuses lists all quote request statuses
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuoteStatusPending, QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired}
}

// QuoteRequest represents the quote_requests table
type QuoteRequest struct {
	ID                     uint             `gorm:"primaryKey" json:"id"`
	CompanyName            string           `gorm:"type:varchar(100);not null" json:"company_name"`
	ContactPerson          string           `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email                  string           `gorm:"type:varchar(254);not null" json:"email"`
	Phone                  string           `gorm:"type:varchar(20);not null" json:"phone"`
	Variety                Variety          `gorm:"type:varchar(20);not null" json:"variety"`
	QuantityRange          QuantityRange    `gorm:"type:varchar(20);not null" json:"quantity_range"`
	DeliveryLocation       string           `gorm:"type:varchar(200);not null" json:"delivery_location"`
	DeliveryDate           time.Time        `gorm:"type:date;not null" json:"delivery_date"`
	AdditionalRequirements string           `gorm:"type:text" json:"additional_requirements"`
	Status                 QuoteStatus      `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	QuotedPrice            *decimal.Decimal `gorm:"type:decimal(10,2)" json:"quoted_price,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// TableName specifies the table name for QuoteRequest
func (QuoteRequest) TableName() string {
	return "quote_requests"
}
