package services

import (
	"errors"
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
)

var (
	ErrNoTimesSubmitted = errors.New("no times submitted")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// ScheduleInput is one validated {time, weekday set} pair. Days are in
// Monday=0..Sunday=6 order. An empty day set is allowed; such a schedule
// is inert but storable.
type ScheduleInput struct {
	TimeOfDay string
	Days      [7]bool
}

// ParseTimeOfDay validates a 24-hour HH:MM value and returns it
// zero-padded. Seconds and timezone designators are rejected.
func ParseTimeOfDay(raw string) (string, error) {
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return "", ErrInvalidTimeOfDay
	}
	return parsed.Format("15:04"), nil
}

// ValidateScheduleInputs checks the whole submitted set before anything is
// persisted: at least one entry, every time parseable.
func ValidateScheduleInputs(inputs []ScheduleInput) error {
	if len(inputs) == 0 {
		return ErrNoTimesSubmitted
	}
	for _, input := range inputs {
		if _, err := ParseTimeOfDay(input.TimeOfDay); err != nil {
			return err
		}
	}
	return nil
}

// BuildSchedules converts validated inputs to schedule rows. MedicineID is
// assigned by the repository inside the write transaction.
func BuildSchedules(inputs []ScheduleInput) []models.Schedule {
	schedules := make([]models.Schedule, 0, len(inputs))
	for _, input := range inputs {
		schedules = append(schedules, models.Schedule{
			TimeToTake:  input.TimeOfDay,
			OnMonday:    input.Days[0],
			OnTuesday:   input.Days[1],
			OnWednesday: input.Days[2],
			OnThursday:  input.Days[3],
			OnFriday:    input.Days[4],
			OnSaturday:  input.Days[5],
			OnSunday:    input.Days[6],
		})
	}
	return schedules
}
