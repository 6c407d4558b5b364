package db

import (
	"fmt"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

// DueSchedule is one row of the due-today projection.
type DueSchedule struct {
	ScheduleID   uint   `gorm:"column:schedule_id"`
	MedicineName string `gorm:"column:medicine_name"`
	Dosage       string `gorm:"column:dosage"`
	TimeToTake   string `gorm:"column:time_to_take"`
}

// Day flag columns in Monday=0..Sunday=6 order, matching
// models.MondayBasedIndex.
var dayFlagColumns = [7]string{
	"on_monday",
	"on_tuesday",
	"on_wednesday",
	"on_thursday",
	"on_friday",
	"on_saturday",
	"on_sunday",
}

func (repo *ScheduleRepository) FindByID(scheduleID uint) (models.Schedule, error) {
	var schedule models.Schedule
	if err := repo.database.First(&schedule, scheduleID).Error; err != nil {
		return models.Schedule{}, err
	}
	return schedule, nil
}

func (repo *ScheduleRepository) ListByMedicine(medicineID uint) ([]models.Schedule, error) {
	schedules := make([]models.Schedule, 0)
	if err := repo.database.
		Where("medicine_id = ?", medicineID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListDueOnWeekday selects the schedules of one user's medicines whose flag
// for the given Monday-based weekday index is set.
func (repo *ScheduleRepository) ListDueOnWeekday(userID uint, weekdayIndex int) ([]DueSchedule, error) {
	if weekdayIndex < 0 || weekdayIndex >= len(dayFlagColumns) {
		return nil, fmt.Errorf("weekday index out of range: %d", weekdayIndex)
	}

	rows := make([]DueSchedule, 0)
	if err := repo.database.Model(&models.Schedule{}).
		Select("schedules.id AS schedule_id, medicines.name AS medicine_name, medicines.dosage AS dosage, schedules.time_to_take AS time_to_take").
		Joins("JOIN medicines ON medicines.id = schedules.medicine_id").
		Where("medicines.user_id = ?", userID).
		Where(fmt.Sprintf("schedules.%s = ?", dayFlagColumns[weekdayIndex]), true).
		Order("schedules.time_to_take ASC, schedules.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
