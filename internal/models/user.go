package models

import "time"

type User struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	Username         string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	PasswordHash     string    `gorm:"type:varchar(255);not null" json:"-"`
	Email            *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	RegistrationTime time.Time `gorm:"autoCreateTime" json:"registration_time"`

	// Relations
	Advertisements []Advertisement `gorm:"foreignKey:UserID" json:"-"`
}
