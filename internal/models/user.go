package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"size:120"`
	PasswordHash string `gorm:"size:256;not null"`
}
