package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/models"
	"github.com/potatoco/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubSender records or fails outbound mail during tests
type stubSender struct {
	err  error
	sent chan string
}

func (s *stubSender) Send(subject, body string, to []string) error {
	if s.sent != nil {
		s.sent <- subject
	}
	return s.err
}

// setupTest wires an in-memory database, a stub mail sender, and the
// public routes into a bare Fiber app
func setupTest(t *testing.T, sender *stubSender) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.SetDB(db)

	notify.SetSender(sender)
	notify.SetAdminEmail("admin@test.example")

	app := fiber.New()
	app.Post("/contact", ContactSubmit)
	app.Post("/api/quote-request", QuoteRequestSubmit)
	app.Post("/api/newsletter-signup", NewsletterSignup)
	return app
}

type apiResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeAPI(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()
	defer resp.Body.Close()
	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func validQuoteValues() url.Values {
	return url.Values{
		"company_name":      {"Fresh Mart Wholesale"},
		"contact_person":    {"Dana Smith"},
		"email":             {"dana@freshmart.example"},
		"phone":             {"+12025550147"},
		"variety":           {"russet"},
		"quantity_range":    {"large"},
		"delivery_location": {"Boise, ID"},
		"delivery_date":     {"2026-09-15"},
	}
}

func TestQuoteRequestEndpoint(t *testing.T) {
	t.Run("valid submission creates a quote request", func(t *testing.T) {
		app := setupTest(t, &stubSender{})

		resp := postForm(t, app, "/api/quote-request", validQuoteValues())
		payload := decodeAPI(t, resp)
		if !payload.Success {
			t.Fatalf("expected success, got %+v", payload)
		}

		var count int64
		database.GetDB().Model(&models.QuoteRequest{}).Count(&count)
		if count != 1 {
			t.Fatalf("quote request count = %d, want 1", count)
		}
	})

	t.Run("missing delivery location rejects without persisting", func(t *testing.T) {
		app := setupTest(t, &stubSender{})

		values := validQuoteValues()
		values.Set("delivery_location", "")
		resp := postForm(t, app, "/api/quote-request", values)
		payload := decodeAPI(t, resp)
		if payload.Success {
			t.Fatal("expected failure for missing delivery location")
		}
		if len(payload.Errors["delivery_location"]) == 0 {
			t.Fatalf("expected delivery_location error, got %v", payload.Errors)
		}

		var count int64
		database.GetDB().Model(&models.QuoteRequest{}).Count(&count)
		if count != 0 {
			t.Fatalf("quote request count = %d, want 0", count)
		}
	})
}

func TestNewsletterSignupEndpoint(t *testing.T) {
	t.Run("subscribing twice upserts one record", func(t *testing.T) {
		app := setupTest(t, &stubSender{})
		db := database.GetDB()

		resp := postJSON(t, app, "/api/newsletter-signup",
			`{"email":"sam@example.com","interests":["products","prices"]}`)
		if payload := decodeAPI(t, resp); !payload.Success {
			t.Fatalf("first signup failed: %+v", payload)
		}

		// Deactivate to prove the second signup reactivates.
		db.Model(&models.Newsletter{}).Where("email = ?", "sam@example.com").Update("is_active", false)

		resp = postJSON(t, app, "/api/newsletter-signup",
			`{"email":"sam@example.com","interests":["recipes"]}`)
		if payload := decodeAPI(t, resp); !payload.Success {
			t.Fatalf("second signup failed: %+v", payload)
		}

		var subscribers []models.Newsletter
		db.Find(&subscribers)
		if len(subscribers) != 1 {
			t.Fatalf("subscriber count = %d, want 1", len(subscribers))
		}
		subscriber := subscribers[0]
		if !subscriber.IsActive {
			t.Fatal("subscriber not reactivated")
		}
		if len(subscriber.Interests) != 1 || subscriber.Interests[0] != "recipes" {
			t.Fatalf("interests = %v, want [recipes]", subscriber.Interests)
		}
	})

	t.Run("malformed body returns a generic error", func(t *testing.T) {
		app := setupTest(t, &stubSender{})

		resp := postJSON(t, app, "/api/newsletter-signup", `{"email": `)
		payload := decodeAPI(t, resp)
		if payload.Success {
			t.Fatal("expected failure for malformed body")
		}
		if payload.Message != "Invalid request format." {
			t.Fatalf("message = %q", payload.Message)
		}
	})

	t.Run("invalid email creates nothing", func(t *testing.T) {
		app := setupTest(t, &stubSender{})

		resp := postJSON(t, app, "/api/newsletter-signup", `{"email":"not-an-email"}`)
		if payload := decodeAPI(t, resp); payload.Success {
			t.Fatal("expected failure for invalid email")
		}

		var count int64
		database.GetDB().Model(&models.Newsletter{}).Count(&count)
		if count != 0 {
			t.Fatalf("subscriber count = %d, want 0", count)
		}
	})
}

func validContactValues() url.Values {
	return url.Values{
		"name":              {"john o'brien"},
		"email":             {"john@example.com"},
		"phone":             {"+12025550147"},
		"subject":           {"wholesale"},
		"message":           {"We would like to order potatoes in bulk."},
		"privacy_agreement": {"on"},
	}
}

func TestContactSubmit(t *testing.T) {
	t.Run("valid submission persists and redirects", func(t *testing.T) {
		sender := &stubSender{sent: make(chan string, 1)}
		app := setupTest(t, sender)

		resp := postForm(t, app, "/contact", validContactValues())
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303", resp.StatusCode)
		}

		var message models.ContactMessage
		if err := database.GetDB().First(&message).Error; err != nil {
			t.Fatalf("contact message not persisted: %v", err)
		}
		if message.Name != "John O'Brien" {
			t.Fatalf("stored name = %q, want John O'Brien", message.Name)
		}
		if message.Status != models.ContactStatusNew {
			t.Fatalf("status = %q, want new", message.Status)
		}

		select {
		case <-sender.sent:
		case <-time.After(2 * time.Second):
			t.Fatal("admin alert was never attempted")
		}
	})

	t.Run("mail failure does not block persistence or success", func(t *testing.T) {
		app := setupTest(t, &stubSender{err: errors.New("smtp unreachable")})

		resp := postForm(t, app, "/contact", validContactValues())
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303", resp.StatusCode)
		}

		var count int64
		database.GetDB().Model(&models.ContactMessage{}).Count(&count)
		if count != 1 {
			t.Fatalf("contact message count = %d, want 1", count)
		}
	})
}
