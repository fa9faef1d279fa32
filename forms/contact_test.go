package forms

import (
	"testing"
)

func validContactForm() *ContactForm {
	return &ContactForm{
		Name:             "john o'brien",
		Email:            "john@example.com",
		Phone:            "+12025550147",
		Company:          "Spud Kitchen",
		Subject:          "wholesale",
		Message:          "We would like to order potatoes in bulk.",
		PrivacyAgreement: true,
	}
}

func TestContactFormPhoneValidation(t *testing.T) {
	valid := []string{
		"+12025550147",
		"12025550147",
		"202555014",        // 9 digits, the minimum
		"+999999999999999", // 15 digits
		"",                 // optional
	}
	for _, phone := range valid {
		form := validContactForm()
		form.Phone = phone
		if _, errs := form.Validate(); errs.Any() {
			t.Errorf("phone %q rejected: %v", phone, errs)
		}
	}

	invalid := []string{
		"20255501",          // 8 digits, too short
		"+9999999999999999", // 16 digits, too long
		"20-2555-0147",
		"phone",
		"+1 202 555 0147",
		"++12025550147",
	}
	for _, phone := range invalid {
		form := validContactForm()
		form.Phone = phone
		if _, errs := form.Validate(); !errs.Any() {
			t.Errorf("phone %q accepted, want rejection", phone)
		} else if len(errs["phone"]) == 0 {
			t.Errorf("phone %q: error recorded on wrong field: %v", phone, errs)
		}
	}
}

func TestContactFormMessageRules(t *testing.T) {
	t.Run("fewer than three words", func(t *testing.T) {
		form := validContactForm()
		form.Message = "Need potatoes"
		if _, errs := form.Validate(); len(errs["message"]) == 0 {
			t.Fatalf("short message accepted: %v", errs)
		}
	})

	t.Run("fewer than ten characters", func(t *testing.T) {
		form := validContactForm()
		form.Message = "a b c"
		if _, errs := form.Validate(); len(errs["message"]) == 0 {
			t.Fatalf("tiny message accepted: %v", errs)
		}
	})

	t.Run("three words and ten characters", func(t *testing.T) {
		form := validContactForm()
		form.Message = "need more spuds"
		if _, errs := form.Validate(); errs.Any() {
			t.Fatalf("valid message rejected: %v", errs)
		}
	})
}

func TestContactFormNameTitleCased(t *testing.T) {
	cases := map[string]string{
		"john o'brien":    "John O'Brien",
		"MARY ANN":        "Mary Ann",
		"pieter van dijk": "Pieter Van Dijk",
	}
	for input, want := range cases {
		form := validContactForm()
		form.Name = input
		message, errs := form.Validate()
		if errs.Any() {
			t.Fatalf("name %q rejected: %v", input, errs)
		}
		if message.Name != want {
			t.Errorf("name %q stored as %q, want %q", input, message.Name, want)
		}
	}
}

func TestContactFormNameNeedsLetter(t *testing.T) {
	form := validContactForm()
	form.Name = "12345 !!"
	if _, errs := form.Validate(); len(errs["name"]) == 0 {
		t.Fatalf("numeric name accepted: %v", errs)
	}
}

func TestContactFormPrivacyAgreementRequired(t *testing.T) {
	form := validContactForm()
	form.PrivacyAgreement = false
	if _, errs := form.Validate(); len(errs["privacy_agreement"]) == 0 {
		t.Fatalf("missing privacy agreement accepted: %v", errs)
	}
}

func TestContactFormRejectsWholeSubmission(t *testing.T) {
	form := validContactForm()
	form.Email = "not-an-email"
	form.Message = "too short"
	message, errs := form.Validate()
	if message != nil {
		t.Fatal("invalid submission produced a record")
	}
	if len(errs["email"]) == 0 || len(errs["message"]) == 0 {
		t.Fatalf("expected errors on both fields, got %v", errs)
	}
}

func TestContactFormSubjectChoices(t *testing.T) {
	t.Run("placeholder rejected as required", func(t *testing.T) {
		form := validContactForm()
		form.Subject = ""
		if _, errs := form.Validate(); len(errs["subject"]) == 0 {
			t.Fatalf("empty subject accepted: %v", errs)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		form := validContactForm()
		form.Subject = "complaints"
		if _, errs := form.Validate(); len(errs["subject"]) == 0 {
			t.Fatalf("unknown subject accepted: %v", errs)
		}
	})
}
