package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
)

// UpdateTimezone stores the user's IANA timezone, which drives the
// due-today weekday computation.
func (handler *Handler) UpdateTimezone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	timezone := strings.TrimSpace(c.FormValue("timezone"))
	if err := handler.authService.UpdateTimezone(user.ID, timezone); err != nil {
		if errors.Is(err, services.ErrInvalidTimezone) {
			return redirectWithFlash(c, "/dashboard", FlashPayload{Error: "Please choose a valid timezone."})
		}
		return c.Status(fiber.StatusInternalServerError).SendString("failed to update timezone")
	}

	return redirectWithFlash(c, "/dashboard", FlashPayload{Success: "Timezone updated."})
}
