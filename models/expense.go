package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies business expenses
type ExpenseCategory string

const (
	ExpenseSeeds       ExpenseCategory = "seeds"
	ExpenseTransport   ExpenseCategory = "transport"
	ExpenseLabor       ExpenseCategory = "labor"
	ExpenseEquipment   ExpenseCategory = "equipment"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseOther       ExpenseCategory = "other"
)

var expenseCategoryLabels = map[ExpenseCategory]string{
	ExpenseSeeds:       "Seeds",
	ExpenseTransport:   "Transportation",
	ExpenseLabor:       "Labor",
	ExpenseEquipment:   "Equipment",
	ExpenseMaintenance: "Maintenance",
	ExpenseUtilities:   "Utilities",
	ExpenseMarketing:   "Marketing",
	ExpenseOther:       "Other",
}

// Label returns the display name for the category
func (c ExpenseCategory) Label() string {
	if label, ok := expenseCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ExpenseCategories lists all expense categories
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{ExpenseSeeds, ExpenseTransport, ExpenseLabor, ExpenseEquipment, ExpenseMaintenance, ExpenseUtilities, ExpenseMarketing, ExpenseOther}
}

// Expense represents the expenses table. Rows are immutable history.
type Expense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Description   string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Category      ExpenseCategory `gorm:"type:varchar(100);not null" json:"category"`
	ReceiptNumber string          `gorm:"type:varchar(100)" json:"receipt_number"`
	Supplier      string          `gorm:"type:varchar(100)" json:"supplier"`
	IsRecurring   bool            `gorm:"default:false" json:"is_recurring"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
