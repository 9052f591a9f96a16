package db

import "time"

// SiteSettings holds site-wide contact details and notification credentials.
// Singleton table like HomeContent. TelegramBotToken is redacted for
// unauthenticated readers at the handler layer.
type SiteSettings struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SiteName         string    `gorm:"size:255" json:"site_name,omitempty"`
	Tagline          string    `gorm:"size:255" json:"tagline,omitempty"`
	TelegramBotToken string    `gorm:"size:255" json:"telegram_bot_token,omitempty"`
	TelegramChatID   string    `gorm:"size:255" json:"telegram_chat_id,omitempty"`
	ContactEmail     string    `gorm:"size:100" json:"contact_email,omitempty"`
	ContactPhone     string    `gorm:"size:20" json:"contact_phone,omitempty"`
	ContactAddress   string    `gorm:"type:text" json:"contact_address,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
