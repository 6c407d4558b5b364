package models

import "time"

// Status values written by the dose-log flow. Convention only: the column
// is a short string and storage does not reject other values.
const (
	StatusTaken  = "Taken"
	StatusMissed = "Missed"
)

// MedicationLog is an immutable dose event. No operation updates or
// deletes one directly; rows only disappear through cascade.
type MedicationLog struct {
	ID         uint      `gorm:"primaryKey"`
	ScheduleID uint      `gorm:"index;not null"`
	DateTaken  time.Time `gorm:"not null"`
	Status     string    `gorm:"size:10;not null"`
}
