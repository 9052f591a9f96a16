package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so the response never leaks which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("missing or invalid token")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters long")
)

const minPasswordLength = 6

// AdminClaims is the JWT payload identifying an authenticated admin.
type AdminClaims struct {
	AdminID  uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService verifies credentials and mints/verifies bearer tokens.
type AuthService struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates an AuthService signing tokens with the given secret.
func NewAuthService(gdb *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{db: gdb, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Login checks the credentials, touches last_login and returns a signed
// bearer token together with the admin row.
func (s *AuthService) Login(username, password string) (string, *db.Admin, error) {
	var admin db.Admin
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&admin).Update("last_login", now).Error; err != nil {
		return "", nil, fmt.Errorf("touch last login: %w", err)
	}
	admin.LastLogin = &now

	token, err := s.mintToken(&admin)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

func (s *AuthService) mintToken(admin *db.Admin) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token and resolves the embedded
// admin. ErrUnauthenticated covers malformed, expired and badly signed
// tokens; ErrAdminNotFound means the account no longer exists.
func (s *AuthService) VerifyToken(token string) (*db.Admin, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthenticated
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	var admin db.Admin
	if err := s.db.First(&admin, claims.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("load admin: %w", err)
	}
	return &admin, nil
}

// ChangePassword re-hashes and stores a new password after verifying the
// current one.
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	var admin db.Admin
	if err := s.db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.Model(&admin).Update("password_hash", string(hashed)).Error; err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}
