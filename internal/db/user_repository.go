package db

import (
	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByMobileNumber(mobileNumber string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("mobile_number = ?", mobileNumber).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateTimezone(userID uint, timezone string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("timezone", timezone).Error
}
