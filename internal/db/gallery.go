package db

import "time"

// GalleryImage is a single image in the public gallery. The Image field is a
// URL path; paths under the managed upload dir also have a backing file.
type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Image     string    `gorm:"size:255;not null" json:"image"`
	Caption   string    `gorm:"type:text" json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}
