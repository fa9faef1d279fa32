package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus tracks whether a sale has been settled
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending: "Pending",
	PaymentStatusPaid:    "Paid",
	PaymentStatusOverdue: "Overdue",
}

// Label returns the display name for the status
func (s PaymentStatus) Label() string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// PaymentStatuses lists all payment statuses
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue}
}

// Sale represents the sales table. The invoice number is assigned once,
// at first save, and never changes.
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerName  string          `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail string          `gorm:"type:varchar(254)" json:"customer_email"`
	CustomerPhone string          `gorm:"type:varchar(20)" json:"customer_phone"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Variety       string          `gorm:"type:varchar(100);not null" json:"variety"`
	QuantityKg    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity_kg"`
	PricePerKg    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_kg"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	InvoiceNumber string          `gorm:"type:varchar(50);uniqueIndex" json:"invoice_number"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// TotalPrice returns quantity × price per kg. Computed on read, never stored.
func (s *Sale) TotalPrice() decimal.Decimal {
	return s.QuantityKg.Mul(s.PricePerKg)
}

// BeforeCreate assigns the next invoice number in the INV-NNNNN series.
// The sequence continues from the most recently inserted sale, inside the
// creating transaction; the unique index on invoice_number rejects the
// loser if two sales race. Numbers are unique, not guaranteed gapless.
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.InvoiceNumber != "" {
		return nil
	}

	var last Sale
	err := tx.Session(&gorm.Session{NewDB: true}).Order("id DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	lastSeq := 0
	if err == nil && last.InvoiceNumber != "" {
		if idx := strings.LastIndex(last.InvoiceNumber, "-"); idx >= 0 {
			if n, parseErr := strconv.Atoi(last.InvoiceNumber[idx+1:]); parseErr == nil {
				lastSeq = n
			}
		}
	}

	s.InvoiceNumber = fmt.Sprintf("INV-%05d", lastSeq+1)
	return nil
}
