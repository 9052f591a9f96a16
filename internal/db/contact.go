package db

import "time"

// ContactStatusNew is the initial state of a contact message.
const ContactStatusNew = "new"

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Subject   string    `gorm:"size:100" json:"subject,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:50;default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contacts"
}
