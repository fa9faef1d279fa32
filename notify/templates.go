package notify

import (
	"fmt"
	"strings"

	"github.com/potatoco/models"
)

// ContactAlert tells the admin inbox about a new contact message
func ContactAlert(m *models.ContactMessage) {
	company := m.Company
	if company == "" {
		company = "Not provided"
	}

	subject := fmt.Sprintf("New Contact Form Submission: %s", m.Subject.Label())
	body := fmt.Sprintf(`New contact form submission received:

Name: %s
Email: %s
Company: %s
Subject: %s

Message:
%s
`, m.Name, m.Email, company, m.Subject.Label(), m.Message)

	dispatch("contact alert", subject, body, []string{adminEmail})
}

// QuoteConfirmation acknowledges a quote request to the customer
func QuoteConfirmation(q *models.QuoteRequest) {
	subject := "Quote Request Received - Potato Company"
	body := fmt.Sprintf(`Dear %s,

Thank you for your quote request. We have received your inquiry for %s potatoes.

Request Details:
- Company: %s
- Variety: %s
- Quantity: %s
- Delivery Location: %s
- Preferred Delivery Date: %s

Our sales team will review your request and provide a detailed quote within 2 business days.

Best regards,
Potato Company Sales Team
`, q.ContactPerson, q.Variety.Label(), q.CompanyName, q.Variety.Label(),
		q.QuantityRange.Label(), q.DeliveryLocation, q.DeliveryDate.Format("2006-01-02"))

	dispatch("quote confirmation", subject, body, []string{q.Email})
}

// NewsletterWelcome greets a new or returning subscriber
func NewsletterWelcome(email string, interests []string) {
	topics := "All our latest news and products"
	if len(interests) > 0 {
		labels := make([]string, len(interests))
		for i, interest := range interests {
			labels[i] = models.Interest(interest).Label()
		}
		topics = strings.Join(labels, ", ")
	}

	subject := "Welcome to Potato Company Newsletter"
	body := fmt.Sprintf(`Welcome to the Potato Company newsletter!

Thank you for subscribing. You'll receive updates about:
%s

You can unsubscribe at any time by clicking the link in our emails.

Best regards,
Potato Company Team
`, topics)

	dispatch("newsletter welcome", subject, body, []string{email})
}
