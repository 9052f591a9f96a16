package db

import "time"

// Post is a news/update article written by an admin. AuthorID is nullable so
// posts survive deletion of their author.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	AuthorID  *uint     `json:"author_id,omitempty"`
	Author    *Admin    `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
