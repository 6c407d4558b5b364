package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportLogsCSV streams the user's complete dose history as CSV, newest
// first. Timestamps are written in UTC.
func (handler *Handler) ExportLogsCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	entries, err := handler.repositories.MedicationLogs.ListRecentByUser(user.ID, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load history"})
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write([]string{"medicine", "dosage", "scheduled_time", "status", "logged_at_utc"}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build export"})
	}
	for _, entry := range entries {
		record := []string{
			entry.MedicineName,
			entry.Dosage,
			entry.TimeToTake,
			entry.Status,
			entry.DateTaken.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build export"})
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build export"})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="medication-history.csv"`)
	c.Type("csv", "utf-8")
	return c.Send(output.Bytes())
}
