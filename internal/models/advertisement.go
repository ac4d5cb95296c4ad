package models

import "time"

type Advertisement struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`
	UserID      uint64    `gorm:"column:id_user;not null" json:"id_user"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
