package api

import (
	"github.com/gofiber/fiber/v2"
)

const recentLogLimit = 20

// ShowDashboard lists the user's medicines ordered by name together with
// the 20 most recent dose events across all of them.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	medicines, err := handler.medicineService.ListForUser(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load medicines")
	}

	logs, err := handler.repositories.MedicationLogs.ListRecentByUser(user.ID, recentLogLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load history")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":     "Dashboard",
		"Medicines": medicines,
		"Logs":      logs,
	})
}
