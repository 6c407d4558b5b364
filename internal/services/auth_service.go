package services

import (
	"errors"
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByMobileNumber(mobileNumber string) (models.User, error)
	Create(user *models.User) error
	UpdateTimezone(userID uint, timezone string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// FindOrCreateByMobileNumber resolves the user owning a verified mobile
// number, creating the row on first login. Users are never created any
// other way.
func (service *AuthService) FindOrCreateByMobileNumber(mobileNumber string) (models.User, error) {
	user, err := service.users.FindByMobileNumber(mobileNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user = models.User{
		MobileNumber: mobileNumber,
		Timezone:     "UTC",
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateTimezone persists a new IANA timezone name after checking it
// actually resolves.
func (service *AuthService) UpdateTimezone(userID uint, timezone string) error {
	if timezone == "" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return ErrInvalidTimezone
	}
	return service.users.UpdateTimezone(userID, timezone)
}
