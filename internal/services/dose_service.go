package services

import (
	"errors"
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidSchedule covers both a missing schedule and one the requester
// does not own; the two cases are deliberately indistinguishable to the
// caller of the dose-log API.
var ErrInvalidSchedule = errors.New("invalid schedule")

type DoseScheduleStore interface {
	FindByID(scheduleID uint) (models.Schedule, error)
}

type DoseMedicineStore interface {
	FindByID(medicineID uint) (models.Medicine, error)
}

type DoseLogStore interface {
	Create(entry *models.MedicationLog) error
}

type DoseService struct {
	schedules DoseScheduleStore
	medicines DoseMedicineStore
	logs      DoseLogStore
}

func NewDoseService(schedules DoseScheduleStore, medicines DoseMedicineStore, logs DoseLogStore) *DoseService {
	return &DoseService{schedules: schedules, medicines: medicines, logs: logs}
}

// Log appends one dose event after verifying the schedule belongs to the
// requester. The status string is stored as given and duplicates for the
// same schedule and day are allowed; history accumulates.
func (service *DoseService) Log(userID uint, scheduleID uint, status string) (models.MedicationLog, error) {
	schedule, err := service.schedules.FindByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MedicationLog{}, ErrInvalidSchedule
		}
		return models.MedicationLog{}, err
	}

	medicine, err := service.medicines.FindByID(schedule.MedicineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MedicationLog{}, ErrInvalidSchedule
		}
		return models.MedicationLog{}, err
	}
	if medicine.UserID != userID {
		return models.MedicationLog{}, ErrInvalidSchedule
	}

	entry := models.MedicationLog{
		ScheduleID: schedule.ID,
		DateTaken:  time.Now().UTC(),
		Status:     status,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.MedicationLog{}, err
	}
	return entry, nil
}
