package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/config"
	"github.com/shopspring/decimal"
)

var site *config.SiteConfig

// InitSite stores the branding strings rendered into page chrome.
// Called once at startup; the config is never mutated afterwards.
func InitSite(cfg *config.SiteConfig) {
	site = cfg
}

// siteMap merges the branding strings into a view-data map
func siteMap(data fiber.Map) fiber.Map {
	if site != nil {
		data["SiteHeader"] = site.Header
		data["SiteTitle"] = site.Title
		data["SiteIndexTitle"] = site.IndexTitle
	}
	return data
}

// pagination describes one page of a list view
type pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func paginate(c *fiber.Ctx, total int64) pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func (p pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePositiveDecimal parses a two-decimal money or quantity value that
// must be strictly greater than zero
func parsePositiveDecimal(value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// parseNonNegativeDecimal parses a two-decimal value that may be zero
func parseNonNegativeDecimal(value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// parseDate parses an HTML date input value
func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// yieldTier maps a yield efficiency percentage to its display color:
// red below 80, orange from 80 up to 100, green at or above 100.
func yieldTier(efficiency *decimal.Decimal) string {
	if efficiency == nil {
		return ""
	}
	switch {
	case efficiency.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return "green"
	case efficiency.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return "orange"
	default:
		return "red"
	}
}

// paymentTier maps a payment status to its badge color
func paymentTier(status string) string {
	switch status {
	case "paid":
		return "green"
	case "pending":
		return "orange"
	case "overdue":
		return "red"
	default:
		return "black"
	}
}
