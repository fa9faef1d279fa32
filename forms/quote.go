package forms

import (
	"strings"
	"time"

	"github.com/potatoco/models"
)

// QuoteRequestForm carries the raw values of a quote request submission
type QuoteRequestForm struct {
	CompanyName            string `form:"company_name"`
	ContactPerson          string `form:"contact_person"`
	Email                  string `form:"email"`
	Phone                  string `form:"phone"`
	Variety                string `form:"variety"`
	QuantityRange          string `form:"quantity_range"`
	DeliveryLocation       string `form:"delivery_location"`
	DeliveryDate           string `form:"delivery_date"`
	AdditionalRequirements string `form:"additional_requirements"`
}

// Validate checks every field and either returns a QuoteRequest ready
// to persist or the full set of field errors.
func (f *QuoteRequestForm) Validate() (*models.QuoteRequest, Errors) {
	errs := Errors{}

	companyName := strings.TrimSpace(f.CompanyName)
	if companyName == "" {
		errs.Add("company_name", msgRequired)
	}

	contactPerson := strings.TrimSpace(f.ContactPerson)
	if contactPerson == "" {
		errs.Add("contact_person", msgRequired)
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs.Add("email", msgRequired)
	} else if !validEmail(email) {
		errs.Add("email", msgInvalidEmail)
	}

	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		errs.Add("phone", msgRequired)
	} else if !validPhone(phone) {
		errs.Add("phone", msgInvalidPhone)
	}

	variety := models.Variety(f.Variety)
	if f.Variety == "" {
		errs.Add("variety", msgRequired)
	} else if !models.ValidQuoteVariety(variety) {
		errs.Add("variety", "Select a valid variety.")
	}

	quantityRange := models.QuantityRange(f.QuantityRange)
	if f.QuantityRange == "" {
		errs.Add("quantity_range", msgRequired)
	} else if !models.ValidQuantityRange(quantityRange) {
		errs.Add("quantity_range", "Select a valid quantity range.")
	}

	deliveryLocation := strings.TrimSpace(f.DeliveryLocation)
	if deliveryLocation == "" {
		errs.Add("delivery_location", msgRequired)
	}

	var deliveryDate time.Time
	if f.DeliveryDate == "" {
		errs.Add("delivery_date", msgRequired)
	} else {
		parsed, err := time.Parse("2006-01-02", f.DeliveryDate)
		if err != nil {
			errs.Add("delivery_date", "Enter a valid date.")
		} else {
			deliveryDate = parsed
		}
	}

	if errs.Any() {
		return nil, errs
	}

	return &models.QuoteRequest{
		CompanyName:            companyName,
		ContactPerson:          contactPerson,
		Email:                  email,
		Phone:                  phone,
		Variety:                variety,
		QuantityRange:          quantityRange,
		DeliveryLocation:       deliveryLocation,
		DeliveryDate:           deliveryDate,
		AdditionalRequirements: strings.TrimSpace(f.AdditionalRequirements),
		Status:                 models.QuoteStatusPending,
	}, nil
}
