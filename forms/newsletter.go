package forms

import (
	"strings"

	"github.com/potatoco/models"
)

// NewsletterForm carries the raw values of a newsletter signup
type NewsletterForm struct {
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

// Validate checks the email and interest tags. Interests are optional;
// any present tag must be a declared choice.
func (f *NewsletterForm) Validate() (string, []string, Errors) {
	errs := Errors{}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs.Add("email", msgRequired)
	} else if !validEmail(email) {
		errs.Add("email", msgInvalidEmail)
	}

	interests := make([]string, 0, len(f.Interests))
	for _, interest := range f.Interests {
		if !models.ValidInterest(models.Interest(interest)) {
			errs.Add("interests", "Select a valid choice. "+interest+" is not one of the available choices.")
			continue
		}
		interests = append(interests, interest)
	}

	if errs.Any() {
		return "", nil, errs
	}
	return email, interests, nil
}
