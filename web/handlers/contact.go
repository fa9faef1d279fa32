package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/forms"
	"github.com/potatoco/models"
	"github.com/potatoco/notify"
	"github.com/potatoco/web/middleware"
)

// ContactPage renders an empty contact form
func ContactPage(c *fiber.Ctx) error {
	return c.Render("pages/contact", siteMap(fiber.Map{
		"Title":    "Contact Us",
		"Subjects": models.Subjects(),
		"Form":     &forms.ContactForm{},
		"Errors":   forms.Errors{},
	}))
}

// ContactSubmit validates and persists a contact message, then sends the
// admin alert. Validation failure re-renders the form with field errors.
func ContactSubmit(c *fiber.Ctx) error {
	form := &forms.ContactForm{
		Name:             c.FormValue("name"),
		Email:            c.FormValue("email"),
		Phone:            c.FormValue("phone"),
		Company:          c.FormValue("company"),
		Subject:          c.FormValue("subject"),
		Message:          c.FormValue("message"),
		PrivacyAgreement: c.FormValue("privacy_agreement") != "",
	}

	message, errs := form.Validate()
	if errs.Any() {
		return c.Render("pages/contact", siteMap(fiber.Map{
			"Title":        "Contact Us",
			"Subjects":     models.Subjects(),
			"Form":         form,
			"Errors":       errs,
			"FlashLevel":   "error",
			"FlashMessage": "Please correct the errors below and try again.",
		}))
	}

	if err := database.GetDB().Create(message).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return c.Render("pages/contact", siteMap(fiber.Map{
			"Title":        "Contact Us",
			"Subjects":     models.Subjects(),
			"Form":         form,
			"Errors":       forms.Errors{},
			"FlashLevel":   "error",
			"FlashMessage": "Sorry, there was an error processing your message. Please try again.",
		}))
	}

	notify.ContactAlert(message)

	middleware.SetFlash(c, "success", "Thank you for your message! We'll get back to you within 24 hours.")
	return c.Redirect("/contact", fiber.StatusSeeOther)
}
