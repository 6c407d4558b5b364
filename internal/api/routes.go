package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.StartLogin)
	app.Get("/verify-otp", handler.ShowVerifyOTPPage)
	app.Post("/verify-otp", handler.VerifyOTP)
	app.Get("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)

	app.Post("/add-medicine", handler.AuthRequired, handler.AddMedicine)
	app.Get("/edit-medicine/:medicine_id", handler.AuthRequired, handler.ShowEditMedicine)
	app.Post("/edit-medicine/:medicine_id", handler.AuthRequired, handler.UpdateMedicine)
	app.Post("/delete-medicine/:medicine_id", handler.AuthRequired, handler.DeleteMedicine)

	app.Post("/settings/timezone", handler.AuthRequired, handler.UpdateTimezone)

	app.Post("/log-dose", handler.AuthRequired, handler.LogDose)
	app.Get("/api/schedules", handler.AuthRequired, handler.GetDueSchedules)
	app.Get("/api/export/csv", handler.AuthRequired, handler.ExportLogsCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
