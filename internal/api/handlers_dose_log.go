package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
)

// LogDose appends one dose event for a schedule the requester owns. The
// status string is stored as submitted and repeat logs for the same day
// are allowed.
func (handler *Handler) LogDose(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "unauthorized"})
	}

	// JSON only. The endpoint sits outside the form CSRF check, so a
	// form-encoded body must never reach the parser.
	if !c.Is("json") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid payload"})
	}

	payload := logDosePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid payload"})
	}

	if _, err := handler.doseService.Log(user.ID, payload.ScheduleID, payload.Status); err != nil {
		if errors.Is(err, services.ErrInvalidSchedule) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Invalid schedule"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "failed to log dose"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Log updated successfully"})
}

// GetDueSchedules returns the schedules active on today's weekday, where
// "today" is evaluated in the user's timezone (UTC for untouched
// accounts).
func (handler *Handler) GetDueSchedules(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	now := time.Now().In(user.Location())
	weekdayIndex := models.MondayBasedIndex(now.Weekday())

	rows, err := handler.repositories.Schedules.ListDueOnWeekday(user.ID, weekdayIndex)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load schedules"})
	}

	response := make([]dueScheduleResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, dueScheduleResponse{
			ScheduleID:   row.ScheduleID,
			MedicineName: row.MedicineName,
			Dosage:       row.Dosage,
			Time:         row.TimeToTake,
		})
	}
	return c.JSON(response)
}
