package services

import (
	"errors"
	"strings"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrNotOwner         = errors.New("medicine not owned by user")
	ErrMissingFields    = errors.New("name and dosage are required")
)

type MedicineStore interface {
	FindByID(medicineID uint) (models.Medicine, error)
	ListByUserOrderedByName(userID uint) ([]models.Medicine, error)
	CreateWithSchedules(medicine *models.Medicine, schedules []models.Schedule) error
	UpdateWithScheduleReplacement(medicine *models.Medicine, schedules []models.Schedule) error
	DeleteCascade(medicineID uint) error
}

type ScheduleStore interface {
	ListByMedicine(medicineID uint) ([]models.Schedule, error)
}

// MedicineService applies ownership and validation rules in front of the
// medicine repository. Every mutating operation verifies the requester
// owns the resource before touching storage.
type MedicineService struct {
	medicines MedicineStore
	schedules ScheduleStore
}

func NewMedicineService(medicines MedicineStore, schedules ScheduleStore) *MedicineService {
	return &MedicineService{medicines: medicines, schedules: schedules}
}

func (service *MedicineService) ListForUser(userID uint) ([]models.Medicine, error) {
	return service.medicines.ListByUserOrderedByName(userID)
}

// LoadOwned fetches a medicine and distinguishes a missing row
// (ErrMedicineNotFound) from one belonging to somebody else (ErrNotOwner).
func (service *MedicineService) LoadOwned(userID uint, medicineID uint) (models.Medicine, error) {
	medicine, err := service.medicines.FindByID(medicineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Medicine{}, ErrMedicineNotFound
		}
		return models.Medicine{}, err
	}
	if medicine.UserID != userID {
		return models.Medicine{}, ErrNotOwner
	}
	return medicine, nil
}

func (service *MedicineService) SchedulesFor(medicineID uint) ([]models.Schedule, error) {
	return service.schedules.ListByMedicine(medicineID)
}

// Create validates everything up front, then writes the medicine and its
// schedules atomically.
func (service *MedicineService) Create(userID uint, name string, dosage string, inputs []ScheduleInput) (models.Medicine, error) {
	name = strings.TrimSpace(name)
	dosage = strings.TrimSpace(dosage)
	if name == "" || dosage == "" {
		return models.Medicine{}, ErrMissingFields
	}
	if err := ValidateScheduleInputs(inputs); err != nil {
		return models.Medicine{}, err
	}

	medicine := models.Medicine{UserID: userID, Name: name, Dosage: dosage}
	if err := service.medicines.CreateWithSchedules(&medicine, BuildSchedules(inputs)); err != nil {
		return models.Medicine{}, err
	}
	return medicine, nil
}

// Update overwrites name and dosage and replaces the full schedule set in
// one transaction. Logs attached to the previous schedules are lost with
// them.
func (service *MedicineService) Update(userID uint, medicineID uint, name string, dosage string, inputs []ScheduleInput) error {
	medicine, err := service.LoadOwned(userID, medicineID)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	dosage = strings.TrimSpace(dosage)
	if name == "" || dosage == "" {
		return ErrMissingFields
	}
	if err := ValidateScheduleInputs(inputs); err != nil {
		return err
	}

	medicine.Name = name
	medicine.Dosage = dosage
	return service.medicines.UpdateWithScheduleReplacement(&medicine, BuildSchedules(inputs))
}

func (service *MedicineService) Delete(userID uint, medicineID uint) error {
	medicine, err := service.LoadOwned(userID, medicineID)
	if err != nil {
		return err
	}
	return service.medicines.DeleteCascade(medicine.ID)
}
