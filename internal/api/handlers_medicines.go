package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
)

const notOwnerMessage = "You are not authorized to delete this item."

func (handler *Handler) AddMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := parseMedicineForm(c)
	if _, err := handler.medicineService.Create(user.ID, form.Name, form.Dosage, form.Inputs); err != nil {
		return redirectWithFlash(c, "/dashboard", FlashPayload{Error: medicineFormErrorMessage(err)})
	}

	return redirectWithFlash(c, "/dashboard", FlashPayload{Success: "Medicine added successfully!"})
}

func (handler *Handler) ShowEditMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	medicineID, err := c.ParamsInt("medicine_id")
	if err != nil || medicineID <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("medicine not found")
	}

	medicine, err := handler.medicineService.LoadOwned(user.ID, uint(medicineID))
	if err != nil {
		return handler.medicineAccessError(c, err)
	}

	schedules, err := handler.medicineService.SchedulesFor(medicine.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load schedules")
	}

	return handler.render(c, "edit_medicine", fiber.Map{
		"Title":     "Edit Medicine",
		"Medicine":  medicine,
		"Schedules": schedules,
	})
}

// UpdateMedicine applies a full-replace edit: name and dosage overwritten,
// the previous schedule set (and its logs) gone, the submitted set in its
// place.
func (handler *Handler) UpdateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	medicineID, err := c.ParamsInt("medicine_id")
	if err != nil || medicineID <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("medicine not found")
	}

	form := parseMedicineForm(c)
	if err := handler.medicineService.Update(user.ID, uint(medicineID), form.Name, form.Dosage, form.Inputs); err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) || errors.Is(err, services.ErrNotOwner) {
			return handler.medicineAccessError(c, err)
		}
		return redirectWithFlash(c, "/edit-medicine/"+c.Params("medicine_id"), FlashPayload{
			Error: medicineFormErrorMessage(err),
		})
	}

	return redirectWithFlash(c, "/dashboard", FlashPayload{Success: "Medicine updated successfully!"})
}

func (handler *Handler) DeleteMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	medicineID, err := c.ParamsInt("medicine_id")
	if err != nil || medicineID <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("medicine not found")
	}

	if err := handler.medicineService.Delete(user.ID, uint(medicineID)); err != nil {
		return handler.medicineAccessError(c, err)
	}

	return redirectWithFlash(c, "/dashboard", FlashPayload{Success: "Medicine deleted."})
}

// medicineAccessError keeps not-found and not-owner distinct: 404 for a
// missing row, 403 with a plain-text body for somebody else's.
func (handler *Handler) medicineAccessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMedicineNotFound):
		return c.Status(fiber.StatusNotFound).SendString("medicine not found")
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).SendString(notOwnerMessage)
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("operation failed")
	}
}

func medicineFormErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrNoTimesSubmitted):
		return "Please fill all fields."
	case errors.Is(err, services.ErrInvalidTimeOfDay):
		return "Please enter times in HH:MM format."
	default:
		return "Failed to save medicine. Please try again."
	}
}
