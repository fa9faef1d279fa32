package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/forms"
	"github.com/potatoco/models"
	"github.com/potatoco/web/middleware"
)

// inventoryRow is a list row with its derived stock badge
type inventoryRow struct {
	models.Inventory
	LowStock bool
}

// InventoryList displays all inventory items with search, filters and pagination
func InventoryList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	grade := c.Query("quality_grade", "")
	variety := c.Query("variety", "")

	query := db.Model(&models.Inventory{})
	if search != "" {
		query = query.Where("LOWER(variety) LIKE LOWER(?) OR LOWER(storage_location) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
	}
	if grade != "" {
		query = query.Where("quality_grade = ?", grade)
	}
	if variety != "" {
		query = query.Where("variety = ?", variety)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var items []models.Inventory
	if err := query.Order("variety, expiry_date").Limit(page.Limit).Offset(page.Offset()).Find(&items).Error; err != nil {
		return err
	}

	rows := make([]inventoryRow, len(items))
	for i, item := range items {
		rows[i] = inventoryRow{Inventory: item, LowStock: item.IsLowStock()}
	}

	return c.Render("pages/admin/inventory_list", siteMap(fiber.Map{
		"Title":      "Inventory",
		"Rows":       rows,
		"Grades":     models.QualityGrades(),
		"Search":     search,
		"Pagination": page,
	}))
}

// InventoryNew renders an empty inventory form
func InventoryNew(c *fiber.Ctx) error {
	return c.Render("pages/admin/inventory_form", siteMap(fiber.Map{
		"Title":  "New Inventory Item",
		"Item":   &models.Inventory{QualityGrade: models.QualityStandard},
		"Grades": models.QualityGrades(),
		"Errors": forms.Errors{},
	}))
}

// parseInventoryForm reads and validates the shared create/edit fields
func parseInventoryForm(c *fiber.Ctx, item *models.Inventory) forms.Errors {
	errs := forms.Errors{}

	item.Variety = c.FormValue("variety")
	if item.Variety == "" {
		errs.Add("variety", "This field is required.")
	}

	// Inventory may legitimately reach zero; only negatives are invalid.
	if quantity, ok := parseNonNegativeDecimal(c.FormValue("quantity_kg")); ok {
		item.QuantityKg = quantity
	} else {
		errs.Add("quantity_kg", "Quantity must be zero or a positive number.")
	}

	grade := models.QualityGrade(c.FormValue("quality_grade"))
	valid := false
	for _, known := range models.QualityGrades() {
		if grade == known {
			valid = true
			break
		}
	}
	if !valid {
		errs.Add("quality_grade", "Select a valid quality grade.")
	}
	item.QualityGrade = grade

	item.StorageLocation = c.FormValue("storage_location")

	if v := c.FormValue("expiry_date"); v != "" {
		if expiry, ok := parseDate(v); ok {
			item.ExpiryDate = &expiry
		} else {
			errs.Add("expiry_date", "Enter a valid date.")
		}
	} else {
		item.ExpiryDate = nil
	}

	return errs
}

// InventoryCreate persists a new inventory item
func InventoryCreate(c *fiber.Ctx) error {
	var item models.Inventory
	if errs := parseInventoryForm(c, &item); errs.Any() {
		return c.Render("pages/admin/inventory_form", siteMap(fiber.Map{
			"Title":  "New Inventory Item",
			"Item":   &item,
			"Grades": models.QualityGrades(),
			"Errors": errs,
		}))
	}

	if err := database.GetDB().Create(&item).Error; err != nil {
		log.Printf("Error creating inventory item: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Inventory item recorded.")
	return c.Redirect("/admin/inventory", fiber.StatusSeeOther)
}

// InventoryView shows one inventory item
func InventoryView(c *fiber.Ctx) error {
	var item models.Inventory
	if err := database.GetDB().First(&item, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
	}

	return c.Render("pages/admin/inventory_view", siteMap(fiber.Map{
		"Title":    "Inventory Item",
		"Item":     &item,
		"LowStock": item.IsLowStock(),
	}))
}

// InventoryEdit renders the edit form for an inventory item
func InventoryEdit(c *fiber.Ctx) error {
	var item models.Inventory
	if err := database.GetDB().First(&item, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
	}

	return c.Render("pages/admin/inventory_form", siteMap(fiber.Map{
		"Title":  "Edit Inventory Item",
		"Item":   &item,
		"Grades": models.QualityGrades(),
		"Errors": forms.Errors{},
	}))
}

// InventoryUpdate saves changes to an inventory item
func InventoryUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var item models.Inventory
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
	}

	if errs := parseInventoryForm(c, &item); errs.Any() {
		return c.Render("pages/admin/inventory_form", siteMap(fiber.Map{
			"Title":  "Edit Inventory Item",
			"Item":   &item,
			"Grades": models.QualityGrades(),
			"Errors": errs,
		}))
	}

	if err := db.Save(&item).Error; err != nil {
		log.Printf("Error updating inventory item: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Inventory item updated.")
	return c.Redirect("/admin/inventory", fiber.StatusSeeOther)
}

// InventoryDelete removes an inventory item
func InventoryDelete(c *fiber.Ctx) error {
	result := database.GetDB().Delete(&models.Inventory{}, c.Params("id"))
	if result.Error != nil {
		log.Printf("Error deleting inventory item: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
	}

	middleware.SetFlash(c, "success", "Inventory item deleted.")
	return c.Redirect("/admin/inventory", fiber.StatusSeeOther)
}
