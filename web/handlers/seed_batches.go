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

// seedBatchRow is a list row with its derived total cost
type seedBatchRow struct {
	models.SeedBatch
	TotalCost decimal.Decimal
}

// SeedBatchList displays all seed batches with search, filters and pagination
func SeedBatchList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	variety := c.Query("variety", "")
	supplier := c.Query("supplier", "")
	dateFrom := c.Query("date_from", "")
	dateTo := c.Query("date_to", "")

	query := db.Model(&models.SeedBatch{})
	if search != "" {
		query = query.Where("LOWER(variety) LIKE LOWER(?) OR LOWER(supplier) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
	}
	if variety != "" {
		query = query.Where("variety = ?", variety)
	}
	if supplier != "" {
		query = query.Where("supplier = ?", supplier)
	}
	if dateFrom != "" {
		query = query.Where("import_date >= ?", dateFrom)
	}
	if dateTo != "" {
		query = query.Where("import_date <= ?", dateTo)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var batches []models.SeedBatch
	if err := query.Order("import_date DESC").Limit(page.Limit).Offset(page.Offset()).Find(&batches).Error; err != nil {
		return err
	}

	rows := make([]seedBatchRow, len(batches))
	for i, batch := range batches {
		rows[i] = seedBatchRow{SeedBatch: batch, TotalCost: batch.TotalCost()}
	}

	return c.Render("pages/admin/seed_batch_list", siteMap(fiber.Map{
		"Title":      "Seed Batches",
		"Rows":       rows,
		"Varieties":  models.SeedVarieties(),
		"Search":     search,
		"Pagination": page,
	}))
}

// SeedBatchNew renders an empty seed batch form
func SeedBatchNew(c *fiber.Ctx) error {
	return c.Render("pages/admin/seed_batch_form", siteMap(fiber.Map{
		"Title":     "New Seed Batch",
		"Batch":     &models.SeedBatch{},
		"Varieties": models.SeedVarieties(),
		"Errors":    forms.Errors{},
	}))
}

// parseSeedBatchForm reads and validates the shared create/edit fields
func parseSeedBatchForm(c *fiber.Ctx, batch *models.SeedBatch) forms.Errors {
	errs := forms.Errors{}

	variety := models.Variety(c.FormValue("variety"))
	if !models.ValidSeedVariety(variety) {
		errs.Add("variety", "Select a valid variety.")
	}
	batch.Variety = variety

	if quantity, ok := parsePositiveDecimal(c.FormValue("quantity_kg")); ok {
		batch.QuantityKg = quantity
	} else {
		errs.Add("quantity_kg", "Quantity must be a positive number.")
	}

	if cost, ok := parsePositiveDecimal(c.FormValue("cost_per_kg")); ok {
		batch.CostPerKg = cost
	} else {
		errs.Add("cost_per_kg", "Cost per kg must be a positive number.")
	}

	batch.Supplier = c.FormValue("supplier")
	if batch.Supplier == "" {
		errs.Add("supplier", "This field is required.")
	}

	if importDate, ok := parseDate(c.FormValue("import_date")); ok {
		batch.ImportDate = importDate
	} else {
		errs.Add("import_date", "Enter a valid date.")
	}

	batch.Notes = c.FormValue("notes")
	return errs
}

// SeedBatchCreate persists a new seed batch
func SeedBatchCreate(c *fiber.Ctx) error {
	var batch models.SeedBatch
	if errs := parseSeedBatchForm(c, &batch); errs.Any() {
		return c.Render("pages/admin/seed_batch_form", siteMap(fiber.Map{
			"Title":     "New Seed Batch",
			"Batch":     &batch,
			"Varieties": models.SeedVarieties(),
			"Errors":    errs,
		}))
	}

	if err := database.GetDB().Create(&batch).Error; err != nil {
		log.Printf("Error creating seed batch: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Seed batch recorded.")
	return c.Redirect("/admin/seed-batches", fiber.StatusSeeOther)
}

// SeedBatchView shows one seed batch with its planting records
func SeedBatchView(c *fiber.Ctx) error {
	db := database.GetDB()

	var batch models.SeedBatch
	if err := db.First(&batch, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seed batch not found")
	}

	var plantings []models.PlantingRecord
	db.Where("seed_batch_id = ?", batch.ID).Order("date_planted DESC").Find(&plantings)

	return c.Render("pages/admin/seed_batch_view", siteMap(fiber.Map{
		"Title":     "Seed Batch",
		"Batch":     &batch,
		"TotalCost": batch.TotalCost(),
		"Plantings": plantings,
	}))
}

// SeedBatchEdit renders the edit form for a seed batch
func SeedBatchEdit(c *fiber.Ctx) error {
	var batch models.SeedBatch
	if err := database.GetDB().First(&batch, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seed batch not found")
	}

	return c.Render("pages/admin/seed_batch_form", siteMap(fiber.Map{
		"Title":     "Edit Seed Batch",
		"Batch":     &batch,
		"Varieties": models.SeedVarieties(),
		"Errors":    forms.Errors{},
	}))
}

// SeedBatchUpdate saves changes to a seed batch
func SeedBatchUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var batch models.SeedBatch
	if err := db.First(&batch, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Seed batch not found")
	}

	if errs := parseSeedBatchForm(c, &batch); errs.Any() {
		return c.Render("pages/admin/seed_batch_form", siteMap(fiber.Map{
			"Title":     "Edit Seed Batch",
			"Batch":     &batch,
			"Varieties": models.SeedVarieties(),
			"Errors":    errs,
		}))
	}

	if err := db.Save(&batch).Error; err != nil {
		log.Printf("Error updating seed batch: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Seed batch updated.")
	return c.Redirect("/admin/seed-batches", fiber.StatusSeeOther)
}

// SeedBatchDelete removes a seed batch. Planting records referencing it
// are removed by the cascade on the foreign key.
func SeedBatchDelete(c *fiber.Ctx) error {
	result := database.GetDB().Delete(&models.SeedBatch{}, c.Params("id"))
	if result.Error != nil {
		log.Printf("Error deleting seed batch: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Seed batch not found")
	}

	middleware.SetFlash(c, "success", "Seed batch deleted.")
	return c.Redirect("/admin/seed-batches", fiber.StatusSeeOther)
}
