package db

import (
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

type MedicationLogRepository struct {
	database *gorm.DB
}

func NewMedicationLogRepository(database *gorm.DB) *MedicationLogRepository {
	return &MedicationLogRepository{database: database}
}

// LogHistoryEntry is a dose event joined with its medicine for display and
// export.
type LogHistoryEntry struct {
	LogID        uint      `gorm:"column:log_id"`
	MedicineName string    `gorm:"column:medicine_name"`
	Dosage       string    `gorm:"column:dosage"`
	TimeToTake   string    `gorm:"column:time_to_take"`
	Status       string    `gorm:"column:status"`
	DateTaken    time.Time `gorm:"column:date_taken"`
}

func (repo *MedicationLogRepository) Create(entry *models.MedicationLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MedicationLogRepository) CountBySchedule(scheduleID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MedicationLog{}).
		Where("schedule_id = ?", scheduleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecentByUser returns the user's dose history joined through schedule
// and medicine, newest first. A limit of 0 means no limit.
func (repo *MedicationLogRepository) ListRecentByUser(userID uint, limit int) ([]LogHistoryEntry, error) {
	query := repo.database.Model(&models.MedicationLog{}).
		Select("medication_logs.id AS log_id, medicines.name AS medicine_name, medicines.dosage AS dosage, schedules.time_to_take AS time_to_take, medication_logs.status AS status, medication_logs.date_taken AS date_taken").
		Joins("JOIN schedules ON schedules.id = medication_logs.schedule_id").
		Joins("JOIN medicines ON medicines.id = schedules.medicine_id").
		Where("medicines.user_id = ?", userID).
		Order("medication_logs.date_taken DESC, medication_logs.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]LogHistoryEntry, 0)
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
