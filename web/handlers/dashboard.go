package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/models"
	"github.com/shopspring/decimal"
)

// Dashboard shows the admin landing page with business statistics
func Dashboard(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats struct {
		NewMessages   int64
		PendingQuotes int64
		ActivePlots   int64
		TotalSales    int64
		UnpaidSales   int64
	}

	db.Model(&models.ContactMessage{}).Where("status = ?", models.ContactStatusNew).Count(&stats.NewMessages)
	db.Model(&models.QuoteRequest{}).Where("status = ?", models.QuoteStatusPending).Count(&stats.PendingQuotes)
	db.Model(&models.PlantingRecord{}).
		Where("status IN ?", []models.PlantingStatus{models.PlantingStatusPlanted, models.PlantingStatusGrowing, models.PlantingStatusReady}).
		Count(&stats.ActivePlots)
	db.Model(&models.Sale{}).Count(&stats.TotalSales)
	db.Model(&models.Sale{}).Where("payment_status <> ?", models.PaymentStatusPaid).Count(&stats.UnpaidSales)

	// Revenue and spend are summed in Go to keep the arithmetic in
	// fixed-point decimals.
	var sales []models.Sale
	db.Find(&sales)
	revenue := decimal.Zero
	for i := range sales {
		revenue = revenue.Add(sales[i].TotalPrice())
	}

	var expenses []models.Expense
	db.Find(&expenses)
	spend := decimal.Zero
	for i := range expenses {
		spend = spend.Add(expenses[i].Amount)
	}

	// Low stock warnings for the dashboard sidebar
	var items []models.Inventory
	db.Order("variety, expiry_date").Find(&items)
	lowStock := make([]models.Inventory, 0)
	for i := range items {
		if items[i].IsLowStock() {
			lowStock = append(lowStock, items[i])
		}
	}

	return c.Render("pages/admin/dashboard", siteMap(fiber.Map{
		"Title":    "Dashboard",
		"Stats":    stats,
		"Revenue":  revenue,
		"Expenses": spend,
		"LowStock": lowStock,
	}))
}
