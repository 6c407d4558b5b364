package api

import (
	"github.com/harshithareddy1810/Med-Tracker/internal/db"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.medicineService = services.NewMedicineService(handler.repositories.Medicines, handler.repositories.Schedules)
	handler.doseService = services.NewDoseService(handler.repositories.Schedules, handler.repositories.Medicines, handler.repositories.MedicationLogs)
	return handler
}
