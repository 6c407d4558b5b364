package models

import "time"

// User is created lazily on the first successful OTP verification for a
// mobile number and is never updated apart from its timezone.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	MobileNumber string    `gorm:"uniqueIndex;not null"`
	Timezone     string    `gorm:"not null;default:UTC"`
	CreatedAt    time.Time `gorm:"not null"`
}

// Location resolves the user's IANA timezone, falling back to UTC for
// empty or invalid values so untouched accounts keep the original behavior.
func (user User) Location() *time.Location {
	if user.Timezone == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
