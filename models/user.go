package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string  `gorm:"not null;unique" json:"username"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Items    []Item  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
