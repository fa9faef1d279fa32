// Package forms validates public site submissions. Each form either
// produces a normalized record ready to persist or a field → messages
// map; a submission with any failing field is rejected whole.
package forms

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// Optional leading +, optional literal 1, then 9-15 digits.
var phoneRegexp = regexp.MustCompile(`^\+?1?\d{9,15}$`)

const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
	msgInvalidPhone = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
)

// Errors maps a field name to its validation messages
type Errors map[string][]string

// Add appends a message for the given field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether any field failed validation
func (e Errors) Any() bool {
	return len(e) > 0
}

// validEmail reports whether s is a syntactically valid bare email address
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validPhone reports whether s matches the accepted phone format
func validPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// titleCase upper-cases the first letter of every word and lower-cases
// the rest, treating any non-letter as a word boundary, so
// "john o'brien" becomes "John O'Brien".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// containsLetter reports whether s has at least one alphabetic character
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
