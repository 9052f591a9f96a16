package db

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin is an operator account. Accounts are seeded at bootstrap and only
// mutated by login (last_login touch) and password change.
type Admin struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Email        string     `gorm:"size:100" json:"email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (Admin) TableName() string {
	return "admins"
}

// EnsureAdmin creates a bcrypt-hashed admin account when the username does
// not exist yet. Blank credentials are a no-op so a missing env override
// never creates a broken account.
func EnsureAdmin(username, password, email string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing Admin
	err := DB.Where("username = ?", trimmedUser).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return DB.Create(&Admin{
		Username:     trimmedUser,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(email),
	}).Error
}
