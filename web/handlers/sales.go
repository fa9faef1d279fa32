package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/forms"
	"github.com/potatoco/models"
	"github.com/potatoco/web/middleware"
	"github.com/shopspring/decimal"
)

// saleRow is a list row with its derived total and badge color
type saleRow struct {
	models.Sale
	TotalPrice  decimal.Decimal
	PaymentTier string
}

// SaleList displays all sales with search, filters and pagination
func SaleList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	paymentStatus := c.Query("payment_status", "")
	variety := c.Query("variety", "")
	dateFrom := c.Query("date_from", "")
	dateTo := c.Query("date_to", "")

	query := db.Model(&models.Sale{})
	if search != "" {
		query = query.Where(
			"LOWER(customer_name) LIKE LOWER(?) OR LOWER(invoice_number) LIKE LOWER(?) OR LOWER(variety) LIKE LOWER(?)",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if variety != "" {
		query = query.Where("variety = ?", variety)
	}
	if dateFrom != "" {
		query = query.Where("date >= ?", dateFrom)
	}
	if dateTo != "" {
		query = query.Where("date <= ?", dateTo)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var sales []models.Sale
	if err := query.Order("date DESC").Limit(page.Limit).Offset(page.Offset()).Find(&sales).Error; err != nil {
		return err
	}

	rows := make([]saleRow, len(sales))
	for i, sale := range sales {
		rows[i] = saleRow{
			Sale:        sale,
			TotalPrice:  sale.TotalPrice(),
			PaymentTier: paymentTier(string(sale.PaymentStatus)),
		}
	}

	return c.Render("pages/admin/sale_list", siteMap(fiber.Map{
		"Title":           "Sales",
		"Rows":            rows,
		"PaymentStatuses": models.PaymentStatuses(),
		"Search":          search,
		"Pagination":      page,
	}))
}

// SaleNew renders an empty sale form
func SaleNew(c *fiber.Ctx) error {
	return c.Render("pages/admin/sale_form", siteMap(fiber.Map{
		"Title":           "New Sale",
		"Sale":            &models.Sale{PaymentStatus: models.PaymentStatusPending},
		"PaymentStatuses": models.PaymentStatuses(),
		"Errors":          forms.Errors{},
	}))
}

// parseSaleForm reads and validates the shared create/edit fields.
// The invoice number is system-assigned and never read from the form.
func parseSaleForm(c *fiber.Ctx, sale *models.Sale) forms.Errors {
	errs := forms.Errors{}

	sale.CustomerName = c.FormValue("customer_name")
	if sale.CustomerName == "" {
		errs.Add("customer_name", "This field is required.")
	}
	sale.CustomerEmail = c.FormValue("customer_email")
	sale.CustomerPhone = c.FormValue("customer_phone")

	if date, ok := parseDate(c.FormValue("date")); ok {
		sale.Date = date
	} else {
		errs.Add("date", "Enter a valid date.")
	}

	sale.Variety = c.FormValue("variety")
	if sale.Variety == "" {
		errs.Add("variety", "This field is required.")
	}

	if quantity, ok := parsePositiveDecimal(c.FormValue("quantity_kg")); ok {
		sale.QuantityKg = quantity
	} else {
		errs.Add("quantity_kg", "Quantity must be a positive number.")
	}

	if price, ok := parsePositiveDecimal(c.FormValue("price_per_kg")); ok {
		sale.PricePerKg = price
	} else {
		errs.Add("price_per_kg", "Price per kg must be a positive number.")
	}

	status := models.PaymentStatus(c.FormValue("payment_status"))
	valid := false
	for _, known := range models.PaymentStatuses() {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		errs.Add("payment_status", "Select a valid payment status.")
	}
	sale.PaymentStatus = status

	sale.Notes = c.FormValue("notes")
	return errs
}

// SaleCreate persists a new sale. The invoice number is assigned by the
// model's BeforeCreate hook.
func SaleCreate(c *fiber.Ctx) error {
	var sale models.Sale
	if errs := parseSaleForm(c, &sale); errs.Any() {
		return c.Render("pages/admin/sale_form", siteMap(fiber.Map{
			"Title":           "New Sale",
			"Sale":            &sale,
			"PaymentStatuses": models.PaymentStatuses(),
			"Errors":          errs,
		}))
	}

	if err := database.GetDB().Create(&sale).Error; err != nil {
		log.Printf("Error creating sale: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Sale recorded as "+sale.InvoiceNumber+".")
	return c.Redirect("/admin/sales", fiber.StatusSeeOther)
}

// SaleView shows one sale with its invoice details
func SaleView(c *fiber.Ctx) error {
	var sale models.Sale
	if err := database.GetDB().First(&sale, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Sale not found")
	}

	return c.Render("pages/admin/sale_view", siteMap(fiber.Map{
		"Title":       "Sale " + sale.InvoiceNumber,
		"Sale":        &sale,
		"TotalPrice":  sale.TotalPrice(),
		"PaymentTier": paymentTier(string(sale.PaymentStatus)),
	}))
}

// SaleEdit renders the edit form for a sale
func SaleEdit(c *fiber.Ctx) error {
	var sale models.Sale
	if err := database.GetDB().First(&sale, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Sale not found")
	}

	return c.Render("pages/admin/sale_form", siteMap(fiber.Map{
		"Title":           "Edit Sale " + sale.InvoiceNumber,
		"Sale":            &sale,
		"PaymentStatuses": models.PaymentStatuses(),
		"Errors":          forms.Errors{},
	}))
}

// SaleUpdate saves changes to a sale. The invoice number is immutable.
func SaleUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var sale models.Sale
	if err := db.First(&sale, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Sale not found")
	}

	if errs := parseSaleForm(c, &sale); errs.Any() {
		return c.Render("pages/admin/sale_form", siteMap(fiber.Map{
			"Title":           "Edit Sale " + sale.InvoiceNumber,
			"Sale":            &sale,
			"PaymentStatuses": models.PaymentStatuses(),
			"Errors":          errs,
		}))
	}

	if err := db.Save(&sale).Error; err != nil {
		log.Printf("Error updating sale: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Sale updated.")
	return c.Redirect("/admin/sales", fiber.StatusSeeOther)
}

// SaleDelete removes a sale
func SaleDelete(c *fiber.Ctx) error {
	result := database.GetDB().Delete(&models.Sale{}, c.Params("id"))
	if result.Error != nil {
		log.Printf("Error deleting sale: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sale not found")
	}

	middleware.SetFlash(c, "success", "Sale deleted.")
	return c.Redirect("/admin/sales", fiber.StatusSeeOther)
}
