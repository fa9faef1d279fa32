package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/forms"
	"github.com/potatoco/models"
	"github.com/potatoco/notify"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuoteRequestSubmit handles the AJAX quote request form. The response
// is always a {success, message, errors?} payload.
func QuoteRequestSubmit(c *fiber.Ctx) error {
	form := &forms.QuoteRequestForm{
		CompanyName:            c.FormValue("company_name"),
		ContactPerson:          c.FormValue("contact_person"),
		Email:                  c.FormValue("email"),
		Phone:                  c.FormValue("phone"),
		Variety:                c.FormValue("variety"),
		QuantityRange:          c.FormValue("quantity_range"),
		DeliveryLocation:       c.FormValue("delivery_location"),
		DeliveryDate:           c.FormValue("delivery_date"),
		AdditionalRequirements: c.FormValue("additional_requirements"),
	}

	quote, errs := form.Validate()
	if errs.Any() {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Please correct the form errors and try again.",
			"errors":  errs,
		})
	}

	if err := database.GetDB().Create(quote).Error; err != nil {
		log.Printf("Error saving quote request: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Sorry, there was an error processing your request. Please try again.",
		})
	}

	notify.QuoteConfirmation(quote)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quote request submitted successfully! We'll send you a detailed quote within 2 business days.",
	})
}

// NewsletterSignup handles the AJAX newsletter form. The body is JSON;
// signup is an upsert keyed by email, so re-subscribing replaces the
// interest list and reactivates the subscription.
func NewsletterSignup(c *fiber.Ctx) error {
	var form forms.NewsletterForm
	if err := c.BodyParser(&form); err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Invalid request format.",
		})
	}

	email, interests, errs := form.Validate()
	if errs.Any() {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Please enter a valid email address.",
			"errors":  errs,
		})
	}

	created := false
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var subscriber models.Newsletter
		err := tx.Where("email = ?", email).First(&subscriber).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(&models.Newsletter{
				Email:     email,
				Interests: datatypes.NewJSONSlice(interests),
				IsActive:  true,
			}).Error
		}
		if err != nil {
			return err
		}
		subscriber.Interests = datatypes.NewJSONSlice(interests)
		subscriber.IsActive = true
		return tx.Save(&subscriber).Error
	})
	if err != nil {
		log.Printf("Newsletter signup error: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Sorry, there was an error processing your subscription.",
		})
	}

	notify.NewsletterWelcome(email, interests)

	message := "Your newsletter preferences have been updated!"
	if created {
		message = "Thank you for subscribing to our newsletter!"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}
