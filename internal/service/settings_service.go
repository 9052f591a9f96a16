package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsService manages the singleton site-settings row.
type SettingsService struct {
	db *gorm.DB
}

// SettingsInput represents the full editable settings record.
type SettingsInput struct {
	SiteName         string
	Tagline          string
	TelegramBotToken string
	TelegramChatID   string
	ContactEmail     string
	ContactPhone     string
	ContactAddress   string
}

// NewSettingsService creates a SettingsService instance.
func NewSettingsService(gdb *gorm.DB) *SettingsService {
	return &SettingsService{db: gdb}
}

// Get returns the singleton settings row.
func (s *SettingsService) Get() (*db.SiteSettings, error) {
	var item db.SiteSettings
	if err := s.db.Order("id desc").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &item, nil
}

// Update applies the singleton upsert: insert when the table is empty,
// otherwise update the one existing row by id.
func (s *SettingsService) Update(input SettingsInput) (*db.SiteSettings, error) {
	var existing db.SiteSettings
	err := s.db.First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check settings: %w", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := db.SiteSettings{
			SiteName:         input.SiteName,
			Tagline:          input.Tagline,
			TelegramBotToken: input.TelegramBotToken,
			TelegramChatID:   input.TelegramChatID,
			ContactEmail:     input.ContactEmail,
			ContactPhone:     input.ContactPhone,
			ContactAddress:   input.ContactAddress,
		}
		if err := s.db.Create(&created).Error; err != nil {
			return nil, fmt.Errorf("insert settings: %w", err)
		}
		return &created, nil
	}

	updates := map[string]any{
		"site_name":          input.SiteName,
		"tagline":            input.Tagline,
		"telegram_bot_token": input.TelegramBotToken,
		"telegram_chat_id":   input.TelegramChatID,
		"contact_email":      input.ContactEmail,
		"contact_phone":      input.ContactPhone,
		"contact_address":    input.ContactAddress,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s.Get()
}
