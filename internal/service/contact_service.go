package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	ErrContactFieldsMissing = errors.New("please provide name, email and message")
	ErrContactNotFound      = errors.New("contact message not found")
)

// ContactService handles contact-form intake and admin triage.
type ContactService struct {
	db *gorm.DB
}

// ContactInput carries the public submission fields.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Create validates and persists a contact message. Validation precedes the
// insert; an invalid submission has no side effects.
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrContactFieldsMissing
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, ErrEmailInvalid
	}

	contact := db.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: message,
		Status:  db.ContactStatusNew,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &contact, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return items, nil
}

// UpdateStatus sets the triage status of a contact message.
func (s *ContactService) UpdateStatus(id uint, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrStatusRequired
	}

	res := s.db.Model(&db.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update contact status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
