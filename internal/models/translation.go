package models

import "gorm.io/gorm"

// Translation maps (key, language) to a localized UI string.
type Translation struct {
	gorm.Model
	Key      string `gorm:"size:100;not null;uniqueIndex:idx_translation_key_lang"`
	Language string `gorm:"size:5;not null;uniqueIndex:idx_translation_key_lang"`
	Value    string `gorm:"type:text;not null"`
}
