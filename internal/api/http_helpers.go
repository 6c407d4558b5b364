package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// wantsJSONResponse covers the JSON surface: /api/ paths, the log-dose
// endpoint, and any request explicitly accepting JSON.
func wantsJSONResponse(c *fiber.Ctx) bool {
	path := c.Path()
	if strings.HasPrefix(path, "/api/") || path == "/log-dose" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func redirectWithFlash(c *fiber.Ctx, path string, payload FlashPayload) error {
	setFlashCookie(c, payload)
	return c.Redirect(path, fiber.StatusSeeOther)
}
