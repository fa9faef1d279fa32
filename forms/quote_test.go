package forms

import (
	"testing"

	"github.com/potatoco/models"
)

func validQuoteForm() *QuoteRequestForm {
	return &QuoteRequestForm{
		CompanyName:      "Fresh Mart Wholesale",
		ContactPerson:    "Dana Smith",
		Email:            "dana@freshmart.example",
		Phone:            "+12025550147",
		Variety:          "russet",
		QuantityRange:    "large",
		DeliveryLocation: "Boise, ID",
		DeliveryDate:     "2026-09-15",
	}
}

func TestQuoteFormValid(t *testing.T) {
	quote, errs := validQuoteForm().Validate()
	if errs.Any() {
		t.Fatalf("valid form rejected: %v", errs)
	}
	if quote.Status != models.QuoteStatusPending {
		t.Fatalf("status = %q, want pending", quote.Status)
	}
	if quote.Variety != models.VarietyRusset {
		t.Fatalf("variety = %q, want russet", quote.Variety)
	}
	if quote.DeliveryDate.Format("2006-01-02") != "2026-09-15" {
		t.Fatalf("delivery date = %s", quote.DeliveryDate)
	}
}

func TestQuoteFormRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*QuoteRequestForm)
	}{
		{"company_name", func(f *QuoteRequestForm) { f.CompanyName = "" }},
		{"contact_person", func(f *QuoteRequestForm) { f.ContactPerson = "" }},
		{"email", func(f *QuoteRequestForm) { f.Email = "" }},
		{"phone", func(f *QuoteRequestForm) { f.Phone = "" }},
		{"variety", func(f *QuoteRequestForm) { f.Variety = "" }},
		{"quantity_range", func(f *QuoteRequestForm) { f.QuantityRange = "" }},
		{"delivery_location", func(f *QuoteRequestForm) { f.DeliveryLocation = "" }},
		{"delivery_date", func(f *QuoteRequestForm) { f.DeliveryDate = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			form := validQuoteForm()
			tc.mutate(form)
			quote, errs := form.Validate()
			if quote != nil {
				t.Fatal("invalid submission produced a record")
			}
			if len(errs[tc.field]) == 0 {
				t.Fatalf("expected error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestQuoteFormEnumChoices(t *testing.T) {
	t.Run("unknown variety", func(t *testing.T) {
		form := validQuoteForm()
		form.Variety = "maris piper"
		if _, errs := form.Validate(); len(errs["variety"]) == 0 {
			t.Fatalf("unknown variety accepted: %v", errs)
		}
	})

	t.Run("mixed varieties allowed on quotes", func(t *testing.T) {
		form := validQuoteForm()
		form.Variety = "mixed"
		if _, errs := form.Validate(); errs.Any() {
			t.Fatalf("mixed variety rejected: %v", errs)
		}
	})

	t.Run("unknown quantity range", func(t *testing.T) {
		form := validQuoteForm()
		form.QuantityRange = "gigantic"
		if _, errs := form.Validate(); len(errs["quantity_range"]) == 0 {
			t.Fatalf("unknown quantity range accepted: %v", errs)
		}
	})
}

func TestQuoteFormBadDate(t *testing.T) {
	form := validQuoteForm()
	form.DeliveryDate = "15/09/2026"
	if _, errs := form.Validate(); len(errs["delivery_date"]) == 0 {
		t.Fatalf("malformed date accepted: %v", errs)
	}
}

func TestNewsletterFormValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		form := &NewsletterForm{Email: "sam@example.com", Interests: []string{"products", "recipes"}}
		email, interests, errs := form.Validate()
		if errs.Any() {
			t.Fatalf("valid form rejected: %v", errs)
		}
		if email != "sam@example.com" || len(interests) != 2 {
			t.Fatalf("normalized values wrong: %q %v", email, interests)
		}
	})

	t.Run("interests optional", func(t *testing.T) {
		form := &NewsletterForm{Email: "sam@example.com"}
		if _, _, errs := form.Validate(); errs.Any() {
			t.Fatalf("empty interests rejected: %v", errs)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		form := &NewsletterForm{Email: "not an email"}
		if _, _, errs := form.Validate(); len(errs["email"]) == 0 {
			t.Fatalf("bad email accepted: %v", errs)
		}
	})

	t.Run("unknown interest", func(t *testing.T) {
		form := &NewsletterForm{Email: "sam@example.com", Interests: []string{"conspiracies"}}
		if _, _, errs := form.Validate(); len(errs["interests"]) == 0 {
			t.Fatalf("unknown interest accepted: %v", errs)
		}
	})
}
