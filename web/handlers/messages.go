package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/models"
	"github.com/potatoco/web/middleware"
)

// ContactMessageList displays incoming contact messages for triage
func ContactMessageList(c *fiber.Ctx) error {
	db := database.GetDB()

	search := c.Query("search", "")
	status := c.Query("status", "")
	subject := c.Query("subject", "")

	query := db.Model(&models.ContactMessage{})
	if search != "" {
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?)",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var total int64
	query.Count(&total)
	page := paginate(c, total)

	var messages []models.ContactMessage
	if err := query.Order("sent_at DESC").Limit(page.Limit).Offset(page.Offset()).Find(&messages).Error; err != nil {
		return err
	}

	return c.Render("pages/admin/message_list", siteMap(fiber.Map{
		"Title":      "Contact Messages",
		"Rows":       messages,
		"Statuses":   models.ContactStatuses(),
		"Subjects":   models.Subjects(),
		"Search":     search,
		"Pagination": page,
	}))
}

// ContactMessageView shows one contact message
func ContactMessageView(c *fiber.Ctx) error {
	var message models.ContactMessage
	if err := database.GetDB().First(&message, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}

	return c.Render("pages/admin/message_view", siteMap(fiber.Map{
		"Title":    "Message from " + message.Name,
		"Message":  &message,
		"IsRecent": message.IsRecent(),
		"Statuses": models.ContactStatuses(),
	}))
}

// ContactMessageUpdate lets staff move a message through the triage
// statuses and keep internal notes. The message body itself is immutable.
func ContactMessageUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var message models.ContactMessage
	if err := db.First(&message, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}

	status := models.ContactStatus(c.FormValue("status"))
	valid := false
	for _, known := range models.ContactStatuses() {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	message.Status = status
	message.AdminNotes = c.FormValue("admin_notes")
	if err := db.Save(&message).Error; err != nil {
		log.Printf("Error updating contact message: %v", err)
		return err
	}

	middleware.SetFlash(c, "success", "Message updated.")
	return c.Redirect("/admin/messages/"+c.Params("id"), fiber.StatusSeeOther)
}
