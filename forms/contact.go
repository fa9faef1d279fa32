package forms

import (
	"strings"

	"github.com/potatoco/models"
)

// ContactForm carries the raw values of a contact page submission
type ContactForm struct {
	Name             string `form:"name"`
	Email            string `form:"email"`
	Phone            string `form:"phone"`
	Company          string `form:"company"`
	Subject          string `form:"subject"`
	Message          string `form:"message"`
	PrivacyAgreement bool   `form:"privacy_agreement"`
}

// Validate checks every field and either returns a ContactMessage ready
// to persist or the full set of field errors. Nothing is persisted here.
func (f *ContactForm) Validate() (*models.ContactMessage, Errors) {
	errs := Errors{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs.Add("name", msgRequired)
	} else if !containsLetter(name) {
		errs.Add("name", "Name must contain at least one letter.")
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs.Add("email", msgRequired)
	} else if !validEmail(email) {
		errs.Add("email", msgInvalidEmail)
	}

	phone := strings.TrimSpace(f.Phone)
	if phone != "" && !validPhone(phone) {
		errs.Add("phone", msgInvalidPhone)
	}

	subject := models.Subject(f.Subject)
	if f.Subject == "" {
		errs.Add("subject", msgRequired)
	} else if !models.ValidSubject(subject) {
		errs.Add("subject", "Select a valid subject.")
	}

	message := strings.TrimSpace(f.Message)
	if message == "" {
		errs.Add("message", msgRequired)
	} else {
		if len(message) < 10 {
			errs.Add("message", "Message must be at least 10 characters long.")
		}
		if len(strings.Fields(message)) < 3 {
			errs.Add("message", "Please provide a more detailed message (at least 3 words).")
		}
	}

	if !f.PrivacyAgreement {
		errs.Add("privacy_agreement", "You must agree to the privacy policy and terms of service.")
	}

	if errs.Any() {
		return nil, errs
	}

	return &models.ContactMessage{
		Name:    titleCase(name),
		Email:   email,
		Phone:   phone,
		Company: strings.TrimSpace(f.Company),
		Subject: subject,
		Message: message,
		Status:  models.ContactStatusNew,
	}, nil
}
