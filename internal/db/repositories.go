package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Medicines      *MedicineRepository
	Schedules      *ScheduleRepository
	MedicationLogs *MedicationLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Medicines:      NewMedicineRepository(database),
		Schedules:      NewScheduleRepository(database),
		MedicationLogs: NewMedicationLogRepository(database),
	}
}
