package models

import "gorm.io/gorm"

// CarouselSettings is a single-row table controlling the homepage carousel.
type CarouselSettings struct {
	gorm.Model
	IsActive        bool `gorm:"not null"`
	IntervalSeconds int  `gorm:"default:5"`
}

type CarouselItem struct {
	gorm.Model
	FileRef   string `gorm:"size:200;not null"` // file name under uploads/carousel
	LinkURL   string `gorm:"size:500"`
	AltText   string `gorm:"size:200"`
	IsActive  bool   `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}
