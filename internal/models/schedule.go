package models

import (
	"strings"
	"time"
)

// Schedule is one clock-time slot for one medicine, active on a subset of
// the seven weekdays. All seven flags false is a valid, inert state.
type Schedule struct {
	ID          uint   `gorm:"primaryKey"`
	MedicineID  uint   `gorm:"index;not null"`
	TimeToTake  string `gorm:"size:5;not null"`
	OnMonday    bool   `gorm:"not null;default:false"`
	OnTuesday   bool   `gorm:"not null;default:false"`
	OnWednesday bool   `gorm:"not null;default:false"`
	OnThursday  bool   `gorm:"not null;default:false"`
	OnFriday    bool   `gorm:"not null;default:false"`
	OnSaturday  bool   `gorm:"not null;default:false"`
	OnSunday    bool   `gorm:"not null;default:false"`
	Logs        []MedicationLog `gorm:"constraint:OnDelete:CASCADE"`
}

const NoDaysSelected = "No days selected"

var weekdayAbbreviations = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayFlags returns the seven weekday flags in Monday..Sunday order.
func (schedule Schedule) DayFlags() [7]bool {
	return [7]bool{
		schedule.OnMonday,
		schedule.OnTuesday,
		schedule.OnWednesday,
		schedule.OnThursday,
		schedule.OnFriday,
		schedule.OnSaturday,
		schedule.OnSunday,
	}
}

// ActiveOn reports whether the schedule is due on the given weekday.
func (schedule Schedule) ActiveOn(weekday time.Weekday) bool {
	return schedule.DayFlags()[MondayBasedIndex(weekday)]
}

// ActiveDays projects the day flags to a display string: "Every Day" when
// all seven are set, otherwise the active abbreviations in fixed Mon..Sun
// order, or the no-days sentinel.
func (schedule Schedule) ActiveDays() string {
	flags := schedule.DayFlags()
	active := make([]string, 0, len(flags))
	for index, flag := range flags {
		if flag {
			active = append(active, weekdayAbbreviations[index])
		}
	}
	if len(active) == len(flags) {
		return "Every Day"
	}
	if len(active) == 0 {
		return NoDaysSelected
	}
	return strings.Join(active, ", ")
}

// MondayBasedIndex maps time.Weekday (Sunday=0) to the Monday=0..Sunday=6
// ordering the day columns use.
func MondayBasedIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}
