package models

import "time"

type Medicine struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"index;not null"`
	Name      string     `gorm:"not null"`
	Dosage    string     `gorm:"not null"`
	CreatedAt time.Time
	Schedules []Schedule `gorm:"constraint:OnDelete:CASCADE"`
}
