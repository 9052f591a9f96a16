package db

import (
	"time"

	"gorm.io/datatypes"
)

// Cause is a fundraising cause shown on the public site. Only active causes
// appear in the public listing; the admin listing is unfiltered.
type Cause struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Icon             string         `gorm:"size:100" json:"icon,omitempty"`
	ShortDescription string         `gorm:"type:text" json:"short_description,omitempty"`
	FullDescription  string         `gorm:"type:text" json:"full_description,omitempty"`
	Image            string         `gorm:"size:255" json:"image,omitempty"`
	Features         datatypes.JSON `json:"features,omitempty"`
	Active           bool           `gorm:"default:true" json:"active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (Cause) TableName() string {
	return "causes"
}
