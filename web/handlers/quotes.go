package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/models"
	"github.com/potatoco/web/middleware"
)

// QuoteList displays quote requests moving through the sales pipeline
func QuoteList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	status := c.Query("status", "")
	variety := c.Query("variety", "")

	query := db.Model(&models.QuoteRequest{})
	if search != "" {
		query = query.Where(
			"LOWER(company_name) LIKE LOWER(?) OR LOWER(contact_person) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if variety != "" {
		query = query.Where("variety = ?", variety)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var quotes []models.QuoteRequest
	if err := query.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset()).Find(&quotes).Error; err != nil {
		return err
	}

	return c.Render("pages/admin/quote_list", siteMap(fiber.Map{
		"Title":      "Quote Requests",
		"Rows":       quotes,
		"Statuses":   models.QuoteStatuses(),
		"Varieties":  models.QuoteVarieties(),
		"Search":     search,
		"Pagination": page,
	}))
}

// QuoteView shows one quote request
func QuoteView(c *fiber.Ctx) error {
	var quote models.QuoteRequest
	if err := database.GetDB().First(&quote, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Quote request not found")
	}

	return c.Render("pages/admin/quote_view", siteMap(fiber.Map{
		"Title":    "Quote Request from " + quote.CompanyName,
		"Quote":    &quote,
		"Statuses": models.QuoteStatuses(),
	}))
}

// QuoteUpdate progresses a quote request through the status pipeline.
// The quoted price is set when the quote goes out and kept afterwards.
func QuoteUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var quote models.QuoteRequest
	if err := db.First(&quote, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Quote request not found")
	}

	status := models.QuoteStatus(c.FormValue("status"))
	valid := false
	for _, known := range models.QuoteStatuses() {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}
	quote.Status = status

	// Quoted price is written once, when the quote is sent.
	if v := c.FormValue("quoted_price"); v != "" && quote.QuotedPrice == nil {
		price, ok := parsePositiveDecimal(v)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid quoted price")
		}
		quote.QuotedPrice = &price
	}

	if err := db.Save(&quote).Error; err != nil {
		log.Printf("Error updating quote request: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Quote request updated.")
	return c.Redirect("/admin/quotes/"+c.Params("id"), fiber.StatusSeeOther)
}
