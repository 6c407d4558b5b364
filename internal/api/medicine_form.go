package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
)

// Weekday form-field suffixes in Monday..Sunday order. A time's day flags
// are tied to its position in the submitted list: days_{index}_{suffix}.
var dayFieldSuffixes = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

type medicineForm struct {
	Name   string
	Dosage string
	Inputs []services.ScheduleInput
}

// parseMedicineForm turns the wire format (name, dosage, repeated times[],
// per-index day checkboxes) into a structured, validatable input set.
// Empty time slots are skipped but keep their index for day-flag lookup.
func parseMedicineForm(c *fiber.Ctx) medicineForm {
	args := c.Request().PostArgs()

	form := medicineForm{
		Name:   strings.TrimSpace(c.FormValue("name")),
		Dosage: strings.TrimSpace(c.FormValue("dosage")),
	}

	for index, rawTime := range args.PeekMulti("times[]") {
		timeValue := strings.TrimSpace(string(rawTime))
		if timeValue == "" {
			continue
		}

		input := services.ScheduleInput{TimeOfDay: timeValue}
		for dayIndex, suffix := range dayFieldSuffixes {
			if args.Has(fmt.Sprintf("days_%d_%s", index, suffix)) {
				input.Days[dayIndex] = true
			}
		}
		form.Inputs = append(form.Inputs, input)
	}

	return form
}
