package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/forms"
	"github.com/potatoco/models"
	"github.com/potatoco/web/middleware"
)

// ExpenseList displays all expenses with search, filters and pagination
func ExpenseList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	category := c.Query("category", "")
	recurring := c.Query("is_recurring", "")
	dateFrom := c.Query("date_from", "")
	dateTo := c.Query("date_to", "")

	query := db.Model(&models.Expense{})
	if search != "" {
		query = query.Where(
			"LOWER(description) LIKE LOWER(?) OR LOWER(supplier) LIKE LOWER(?) OR LOWER(receipt_number) LIKE LOWER(?)",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if recurring == "true" {
		query = query.Where("is_recurring = ?", true)
	} else if recurring == "false" {
		query = query.Where("is_recurring = ?", false)
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

	var expenses []models.Expense
	if err := query.Order("date DESC").Limit(page.Limit).Offset(page.Offset()).Find(&expenses).Error; err != nil {
		return err
	}

	return c.Render("pages/admin/expense_list", siteMap(fiber.Map{
		"Title":      "Expenses",
		"Rows":       expenses,
		"Categories": models.ExpenseCategories(),
		"Search":     search,
		"Pagination": page,
	}))
}

// ExpenseNew renders an empty expense form
func ExpenseNew(c *fiber.Ctx) error {
	return c.Render("pages/admin/expense_form", siteMap(fiber.Map{
		"Title":      "New Expense",
		"Expense":    &models.Expense{},
		"Categories": models.ExpenseCategories(),
		"Errors":     forms.Errors{},
	}))
}

// parseExpenseForm reads and validates the shared create/edit fields
func parseExpenseForm(c *fiber.Ctx, expense *models.Expense) forms.Errors {
	errs := forms.Errors{}

	expense.Description = c.FormValue("description")
	if expense.Description == "" {
		errs.Add("description", "This field is required.")
	}

	if amount, ok := parsePositiveDecimal(c.FormValue("amount")); ok {
		expense.Amount = amount
	} else {
		errs.Add("amount", "Amount must be a positive number.")
	}

	if date, ok := parseDate(c.FormValue("date")); ok {
		expense.Date = date
	} else {
		errs.Add("date", "Enter a valid date.")
	}

	category := models.ExpenseCategory(c.FormValue("category"))
	valid := false
	for _, known := range models.ExpenseCategories() {
		if category == known {
			valid = true
			break
		}
	}
	if !valid {
		errs.Add("category", "Select a valid category.")
	}
	expense.Category = category

	expense.ReceiptNumber = c.FormValue("receipt_number")
	expense.Supplier = c.FormValue("supplier")
	expense.IsRecurring = c.FormValue("is_recurring") != ""
	expense.Notes = c.FormValue("notes")
	return errs
}

// ExpenseCreate persists a new expense
func ExpenseCreate(c *fiber.Ctx) error {
	var expense models.Expense
	if errs := parseExpenseForm(c, &expense); errs.Any() {
		return c.Render("pages/admin/expense_form", siteMap(fiber.Map{
			"Title":      "New Expense",
			"Expense":    &expense,
			"Categories": models.ExpenseCategories(),
			"Errors":     errs,
		}))
	}

	if err := database.GetDB().Create(&expense).Error; err != nil {
		log.Printf("Error creating expense: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Expense recorded.")
	return c.Redirect("/admin/expenses", fiber.StatusSeeOther)
}

// ExpenseView shows one expense
func ExpenseView(c *fiber.Ctx) error {
	var expense models.Expense
	if err := database.GetDB().First(&expense, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}

	return c.Render("pages/admin/expense_view", siteMap(fiber.Map{
		"Title":   "Expense",
		"Expense": &expense,
	}))
}

// ExpenseEdit renders the edit form for an expense
func ExpenseEdit(c *fiber.Ctx) error {
	var expense models.Expense
	if err := database.GetDB().First(&expense, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}

	return c.Render("pages/admin/expense_form", siteMap(fiber.Map{
		"Title":      "Edit Expense",
		"Expense":    &expense,
		"Categories": models.ExpenseCategories(),
		"Errors":     forms.Errors{},
	}))
}

// ExpenseUpdate saves changes to an expense
func ExpenseUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var expense models.Expense
	if err := db.First(&expense, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}

	if errs := parseExpenseForm(c, &expense); errs.Any() {
		return c.Render("pages/admin/expense_form", siteMap(fiber.Map{
			"Title":      "Edit Expense",
			"Expense":    &expense,
			"Categories": models.ExpenseCategories(),
			"Errors":     errs,
		}))
	}

	if err := db.Save(&expense).Error; err != nil {
		log.Printf("Error updating expense: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Expense updated.")
	return c.Redirect("/admin/expenses", fiber.StatusSeeOther)
}

// ExpenseDelete removes an expense
func ExpenseDelete(c *fiber.Ctx) error {
	result := database.GetDB().Delete(&models.Expense{}, c.Params("id"))
	if result.Error != nil {
		log.Printf("Error deleting expense: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}

	middleware.SetFlash(c, "success", "Expense deleted.")
	return c.Redirect("/admin/expenses", fiber.StatusSeeOther)
}
