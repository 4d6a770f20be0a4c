package models

import "gorm.io/gorm"

type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanPremium
}

type Agency struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	City        string `gorm:"size:100;not null"`
	Website     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Plan        Plan   `gorm:"type:varchar(20);not null;default:'basic'"`

	LogoRef  string `gorm:"size:200"` // file name under uploads/logos
	CoverRef string `gorm:"size:200"` // file name under uploads/covers

	// no column default: gorm omits zero-valued fields that carry one
	// from the INSERT, so a false here would never reach the database
	IsActive  bool `gorm:"not null"`
	SortOrder int  `gorm:"not null;default:0"`

	Images []AgencyImage
}

// AgencyImage is one gallery image of an agency.
type AgencyImage struct {
	gorm.Model
	AgencyID uint `gorm:"index;not null"`

	FileRef   string `gorm:"size:200;not null"` // file name under uploads/agencies
	AltText   string `gorm:"size:200"`
	IsPrimary bool   `gorm:"default:false"`
	SortOrder int    `gorm:"not null;default:0"`
}
