package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Flash reads and clears the one-shot flash cookie so the following
// handler can show the message left by a previous redirect.
func Flash() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(flashCookie); raw != "" {
			if decoded, err := url.QueryUnescape(raw); err == nil {
				if level, message, found := strings.Cut(decoded, "|"); found {
					c.Locals("FlashLevel", level)
					c.Locals("FlashMessage", message)
				}
			}
			c.Cookie(&fiber.Cookie{
				Name:     flashCookie,
				Value:    "",
				Path:     "/",
				Expires:  time.Now().Add(-time.Hour),
				HTTPOnly: true,
			})
		}
		return c.Next()
	}
}

// SetFlash leaves a one-shot message for the next request.
// Level is "success" or "error".
func SetFlash(c *fiber.Ctx, level, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HTTPOnly: true,
	})
}
