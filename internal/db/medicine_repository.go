package db

import (
	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

type MedicineRepository struct {
	database *gorm.DB
}

func NewMedicineRepository(database *gorm.DB) *MedicineRepository {
	return &MedicineRepository{database: database}
}

func (repo *MedicineRepository) FindByID(medicineID uint) (models.Medicine, error) {
	var medicine models.Medicine
	if err := repo.database.First(&medicine, medicineID).Error; err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

func (repo *MedicineRepository) ListByUserOrderedByName(userID uint) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Preload("Schedules", func(query *gorm.DB) *gorm.DB {
			return query.Order("schedules.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// CreateWithSchedules persists the medicine and all of its schedules in one
// transaction, so a medicine is never observable without its submitted
// schedule rows.
func (repo *MedicineRepository) CreateWithSchedules(medicine *models.Medicine, schedules []models.Schedule) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(medicine).Error; err != nil {
			return err
		}
		for index := range schedules {
			schedules[index].MedicineID = medicine.ID
			if err := tx.Create(&schedules[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithScheduleReplacement overwrites name and dosage and replaces the
// full schedule set. Logs attached to the deleted schedules go with them;
// an edit is a destructive replace, not a merge.
func (repo *MedicineRepository) UpdateWithScheduleReplacement(medicine *models.Medicine, schedules []models.Schedule) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Medicine{}).Where("id = ?", medicine.ID).Updates(map[string]any{
			"name":   medicine.Name,
			"dosage": medicine.Dosage,
		}).Error; err != nil {
			return err
		}

		if err := deleteSchedulesForMedicine(tx, medicine.ID); err != nil {
			return err
		}

		for index := range schedules {
			schedules[index].MedicineID = medicine.ID
			if err := tx.Create(&schedules[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade removes the medicine together with its schedules and their
// logs. The schema also declares ON DELETE CASCADE; the explicit deletes
// keep the behavior independent of the connection's foreign-key pragma.
func (repo *MedicineRepository) DeleteCascade(medicineID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := deleteSchedulesForMedicine(tx, medicineID); err != nil {
			return err
		}
		return tx.Delete(&models.Medicine{}, medicineID).Error
	})
}

func deleteSchedulesForMedicine(tx *gorm.DB, medicineID uint) error {
	if err := tx.
		Where("schedule_id IN (?)", tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Schedule{}).
			Select("id").
			Where("medicine_id = ?", medicineID)).
		Delete(&models.MedicationLog{}).Error; err != nil {
		return err
	}
	return tx.Where("medicine_id = ?", medicineID).Delete(&models.Schedule{}).Error
}
