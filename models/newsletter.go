package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interest is a newsletter topic a subscriber can opt into
type Interest string

const (
	InterestProducts  Interest = "products"
	InterestPrices    Interest = "prices"
	InterestSeasonal  Interest = "seasonal"
	InterestRecipes   Interest = "recipes"
	InterestWholesale Interest = "wholesale"
)

var interestLabels = map[Interest]string{
	InterestProducts:  "New Products",
	InterestPrices:    "Price Updates",
	InterestSeasonal:  "Seasonal Information",
	InterestRecipes:   "Recipes & Tips",
	InterestWholesale: "Wholesale Opportunities",
}

// Label returns the display name for the interest
func (i Interest) Label() string {
	if label, ok := interestLabels[i]; ok {
		return label
	}
	return string(i)
}

// Interests lists all selectable newsletter interests
func Interests() []Interest {
	return []Interest{InterestProducts, InterestPrices, InterestSeasonal, InterestRecipes, InterestWholesale}
}

// ValidInterest reports whether i is a selectable interest
func ValidInterest(i Interest) bool {
	_, ok := interestLabels[i]
	return ok
}

// Newsletter represents the newsletter_subscribers table.
// Email is unique: re-subscribing updates the existing row.
type Newsletter struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Email        string                      `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	Interests    datatypes.JSONSlice[string] `json:"interests"`
	SubscribedAt time.Time                   `gorm:"autoCreateTime" json:"subscribed_at"`
	IsActive     bool                        `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Newsletter
func (Newsletter) TableName() string {
	return "newsletter_subscribers"
}
