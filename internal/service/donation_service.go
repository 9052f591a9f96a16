package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	ErrDonorNameRequired = errors.New("donor name is required")
	ErrAmountInvalid     = errors.New("a positive amount is required")
	ErrEmailInvalid      = errors.New("email address is not valid")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrStatusRequired    = errors.New("status is required")
)

var validate = validator.New()

// DonationService handles donation intake and admin reporting.
type DonationService struct {
	db *gorm.DB
}

// DonationInput carries the public submission fields.
type DonationInput struct {
	DonorName     string
	Amount        float64
	Cause         string
	Email         string
	Phone         string
	Message       string
	PaymentMethod string
	TransactionID string
}

// DonationFilter restricts the admin listing.
type DonationFilter struct {
	Status string
	Limit  int
	Offset int
}

// DonationListResult aggregates a filtered page of donations.
type DonationListResult struct {
	Donations []db.Donation
	Total     int64
	Limit     int
	Offset    int
}

// DonationBucket is one aggregation line of the stats report.
type DonationBucket struct {
	Status string  `json:"status,omitempty"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// DonationStats is the admin dashboard aggregate.
type DonationStats struct {
	Total      DonationBucket   `json:"total"`
	ByStatus   []DonationBucket `json:"by_status"`
	Last30Days DonationBucket   `json:"last_30_days"`
}

// NewDonationService creates a DonationService instance.
func NewDonationService(gdb *gorm.DB) *DonationService {
	return &DonationService{db: gdb}
}

// Create validates and persists a donation. Validation happens strictly
// before the insert: an invalid submission leaves no row behind. Missing
// payment method and transaction reference get defaults.
func (s *DonationService) Create(input DonationInput) (*db.Donation, error) {
	name := strings.TrimSpace(input.DonorName)
	if name == "" {
		return nil, ErrDonorNameRequired
	}
	if input.Amount <= 0 {
		return nil, ErrAmountInvalid
	}
	email := strings.TrimSpace(input.Email)
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return nil, ErrEmailInvalid
		}
	}

	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "Online"
	}
	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		transactionID = generateTransactionID()
	}

	donation := db.Donation{
		DonorName:     name,
		Amount:        input.Amount,
		Cause:         strings.TrimSpace(input.Cause),
		Email:         email,
		Phone:         strings.TrimSpace(input.Phone),
		Message:       strings.TrimSpace(input.Message),
		Status:        db.DonationStatusReceived,
		PaymentMethod: paymentMethod,
		TransactionID: transactionID,
	}

	if err := s.db.Create(&donation).Error; err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return &donation, nil
}

// generateTransactionID builds a reference unique enough for reconciliation:
// millisecond timestamp plus a random suffix.
func generateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// List returns donations matching the filter, newest first.
func (s *DonationService) List(filter DonationFilter) (DonationListResult, error) {
	result := DonationListResult{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if result.Limit <= 0 {
		result.Limit = 100
	}
	if result.Offset < 0 {
		result.Offset = 0
	}

	query := s.db.Model(&db.Donation{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, fmt.Errorf("count donations: %w", err)
	}

	if err := query.Order("donation_date desc").
		Limit(result.Limit).
		Offset(result.Offset).
		Find(&result.Donations).Error; err != nil {
		return result, fmt.Errorf("list donations: %w", err)
	}
	return result, nil
}

// Get fetches one donation by id.
func (s *DonationService) Get(id uint) (*db.Donation, error) {
	var donation db.Donation
	if err := s.db.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("load donation: %w", err)
	}
	return &donation, nil
}

// UpdateStatus sets the operator-defined status of a donation.
func (s *DonationService) UpdateStatus(id uint, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrStatusRequired
	}

	res := s.db.Model(&db.Donation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update donation status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

// Stats aggregates totals overall, per status and for the trailing 30 days.
func (s *DonationService) Stats() (DonationStats, error) {
	var stats DonationStats

	if err := s.db.Model(&db.Donation{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Scan(&stats.Total).Error; err != nil {
		return stats, fmt.Errorf("total stats: %w", err)
	}

	if err := s.db.Model(&db.Donation{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Group("status").
		Scan(&stats.ByStatus).Error; err != nil {
		return stats, fmt.Errorf("status stats: %w", err)
	}
	if stats.ByStatus == nil {
		stats.ByStatus = []DonationBucket{}
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	if err := s.db.Model(&db.Donation{}).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Where("donation_date >= ?", cutoff).
		Scan(&stats.Last30Days).Error; err != nil {
		return stats, fmt.Errorf("recent stats: %w", err)
	}

	return stats, nil
}
