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

// plantingRow is a list row with its derived yield columns
type plantingRow struct {
	models.PlantingRecord
	YieldEfficiency *decimal.Decimal
	YieldTier       string
}

// PlantingList displays all planting records with search, filters and pagination
func PlantingList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	status := c.Query("status", "")
	dateFrom := c.Query("date_from", "")
	dateTo := c.Query("date_to", "")

	query := db.Model(&models.PlantingRecord{})
	if search != "" {
		query = query.Where("LOWER(field_name) LIKE LOWER(?)", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if dateFrom != "" {
		query = query.Where("date_planted >= ?", dateFrom)
	}
	if dateTo != "" {
		query = query.Where("date_planted <= ?", dateTo)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var records []models.PlantingRecord
	if err := query.Preload("SeedBatch").Order("date_planted DESC").
		Limit(page.Limit).Offset(page.Offset()).Find(&records).Error; err != nil {
		return err
	}

	rows := make([]plantingRow, len(records))
	for i, record := range records {
		efficiency := record.YieldEfficiency()
		rows[i] = plantingRow{
			PlantingRecord:  record,
			YieldEfficiency: efficiency,
			YieldTier:       yieldTier(efficiency),
		}
	}

	return c.Render("pages/admin/planting_list", siteMap(fiber.Map{
		"Title":      "Planting Records",
		"Rows":       rows,
		"Statuses":   models.PlantingStatuses(),
		"Search":     search,
		"Pagination": page,
	}))
}

// PlantingNew renders an empty planting record form
func PlantingNew(c *fiber.Ctx) error {
	var batches []models.SeedBatch
	database.GetDB().Order("import_date DESC").Find(&batches)

	return c.Render("pages/admin/planting_form", siteMap(fiber.Map{
		"Title":    "New Planting Record",
		"Record":   &models.PlantingRecord{Status: models.PlantingStatusPlanted},
		"Batches":  batches,
		"Statuses": models.PlantingStatuses(),
		"Errors":   forms.Errors{},
	}))
}

// parsePlantingForm reads and validates the shared create/edit fields
func parsePlantingForm(c *fiber.Ctx, record *models.PlantingRecord) forms.Errors {
	errs := forms.Errors{}
	db := database.GetDB()

	record.FieldName = c.FormValue("field_name")
	if record.FieldName == "" {
		errs.Add("field_name", "This field is required.")
	}

	if v := c.FormValue("seed_batch_id"); v != "" {
		var batch models.SeedBatch
		if err := db.First(&batch, v).Error; err != nil {
			errs.Add("seed_batch_id", "Select a valid seed batch.")
		} else {
			record.SeedBatchID = batch.ID
		}
	} else {
		errs.Add("seed_batch_id", "This field is required.")
	}

	if datePlanted, ok := parseDate(c.FormValue("date_planted")); ok {
		record.DatePlanted = datePlanted
	} else {
		errs.Add("date_planted", "Enter a valid date.")
	}

	if expected, ok := parsePositiveDecimal(c.FormValue("expected_yield_kg")); ok {
		record.ExpectedYieldKg = expected
	} else {
		errs.Add("expected_yield_kg", "Expected yield must be a positive number.")
	}

	if v := c.FormValue("actual_yield_kg"); v != "" {
		if actual, ok := parsePositiveDecimal(v); ok {
			record.ActualYieldKg = &actual
		} else {
			errs.Add("actual_yield_kg", "Actual yield must be a positive number.")
		}
	} else {
		record.ActualYieldKg = nil
	}

	if v := c.FormValue("harvest_date"); v != "" {
		if harvestDate, ok := parseDate(v); ok {
			record.HarvestDate = &harvestDate
		} else {
			errs.Add("harvest_date", "Enter a valid date.")
		}
	} else {
		record.HarvestDate = nil
	}

	status := models.PlantingStatus(c.FormValue("status"))
	valid := false
	for _, known := range models.PlantingStatuses() {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		errs.Add("status", "Select a valid status.")
	}
	record.Status = status

	record.Notes = c.FormValue("notes")
	return errs
}

// PlantingCreate persists a new planting record
func PlantingCreate(c *fiber.Ctx) error {
	var record models.PlantingRecord
	if errs := parsePlantingForm(c, &record); errs.Any() {
		var batches []models.SeedBatch
		database.GetDB().Order("import_date DESC").Find(&batches)
		return c.Render("pages/admin/planting_form", siteMap(fiber.Map{
			"Title":    "New Planting Record",
			"Record":   &record,
			"Batches":  batches,
			"Statuses": models.PlantingStatuses(),
			"Errors":   errs,
		}))
	}

	if err := database.GetDB().Create(&record).Error; err != nil {
		log.Printf("Error creating planting record: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Planting record created.")
	return c.Redirect("/admin/plantings", fiber.StatusSeeOther)
}

// PlantingView shows one planting record with its yield details
func PlantingView(c *fiber.Ctx) error {
	var record models.PlantingRecord
	if err := database.GetDB().Preload("SeedBatch").First(&record, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Planting record not found")
	}

	efficiency := record.YieldEfficiency()
	return c.Render("pages/admin/planting_view", siteMap(fiber.Map{
		"Title":           "Planting Record",
		"Record":          &record,
		"YieldEfficiency": efficiency,
		"YieldTier":       yieldTier(efficiency),
	}))
}

// PlantingEdit renders the edit form for a planting record
func PlantingEdit(c *fiber.Ctx) error {
	var record models.PlantingRecord
	if err := database.GetDB().First(&record, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Planting record not found")
	}

	var batches []models.SeedBatch
	database.GetDB().Order("import_date DESC").Find(&batches)

	return c.Render("pages/admin/planting_form", siteMap(fiber.Map{
		"Title":    "Edit Planting Record",
		"Record":   &record,
		"Batches":  batches,
		"Statuses": models.PlantingStatuses(),
		"Errors":   forms.Errors{},
	}))
}

// PlantingUpdate saves changes to a planting record
func PlantingUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var record models.PlantingRecord
	if err := db.First(&record, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Planting record not found")
	}

	if errs := parsePlantingForm(c, &record); errs.Any() {
		var batches []models.SeedBatch
		db.Order("import_date DESC").Find(&batches)
		return c.Render("pages/admin/planting_form", siteMap(fiber.Map{
			"Title":    "Edit Planting Record",
			"Record":   &record,
			"Batches":  batches,
			"Statuses": models.PlantingStatuses(),
			"Errors":   errs,
		}))
	}

	if err := db.Save(&record).Error; err != nil {
		log.Printf("Error updating planting record: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Planting record updated.")
	return c.Redirect("/admin/plantings", fiber.StatusSeeOther)
}

// PlantingDelete removes a planting record
func PlantingDelete(c *fiber.Ctx) error {
	result := database.GetDB().Delete(&models.PlantingRecord{}, c.Params("id"))
	if result.Error != nil {
		log.Printf("Error deleting planting record: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Planting record not found")
	}

	middleware.SetFlash(c, "success", "Planting record deleted.")
	return c.Redirect("/admin/plantings", fiber.StatusSeeOther)
}
