package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var (
	ErrCauseNotFound      = errors.New("cause not found")
	ErrCauseTitleRequired = errors.New("cause title is required")
)

// CauseService handles cause CRUD. Public reads only see active causes; the
// admin listing is unfiltered.
type CauseService struct {
	db *gorm.DB
}

// CauseInput represents fields accepted when creating or updating a cause.
type CauseInput struct {
	Title            string
	Icon             string
	ShortDescription string
	FullDescription  string
	Image            string
	Features         []string
	Active           *bool
}

// NewCauseService creates a CauseService instance.
func NewCauseService(gdb *gorm.DB) *CauseService {
	return &CauseService{db: gdb}
}

// ListActive returns the public causes, newest first.
func (s *CauseService) ListActive() ([]db.Cause, error) {
	var items []db.Cause
	if err := s.db.Where("active = ?", true).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active causes: %w", err)
	}
	return items, nil
}

// ListAll returns every cause regardless of visibility.
func (s *CauseService) ListAll() ([]db.Cause, error) {
	var items []db.Cause
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list causes: %w", err)
	}
	return items, nil
}

// Get fetches one cause by id. Visibility is not checked here; the public
// detail route intentionally serves inactive causes too.
func (s *CauseService) Get(id uint) (*db.Cause, error) {
	var item db.Cause
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCauseNotFound
		}
		return nil, fmt.Errorf("load cause: %w", err)
	}
	return &item, nil
}

// Create persists a new cause. Active defaults to true unless the input says
// otherwise.
func (s *CauseService) Create(input CauseInput) (*db.Cause, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrCauseTitleRequired
	}

	features, err := encodeFeatures(input.Features)
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	cause := db.Cause{
		Title:            title,
		Icon:             strings.TrimSpace(input.Icon),
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Image:            strings.TrimSpace(input.Image),
		Features:         features,
		Active:           active,
	}

	if err := s.db.Create(&cause).Error; err != nil {
		return nil, fmt.Errorf("insert cause: %w", err)
	}
	return &cause, nil
}

// Update replaces the stored fields of a cause.
func (s *CauseService) Update(id uint, input CauseInput) (*db.Cause, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrCauseTitleRequired
	}

	features, err := encodeFeatures(input.Features)
	if err != nil {
		return nil, err
	}

	item.Title = title
	item.Icon = strings.TrimSpace(input.Icon)
	item.ShortDescription = input.ShortDescription
	item.FullDescription = input.FullDescription
	item.Image = strings.TrimSpace(input.Image)
	item.Features = features
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update cause: %w", err)
	}
	return item, nil
}

// Delete removes a cause.
func (s *CauseService) Delete(id uint) error {
	res := s.db.Delete(&db.Cause{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete cause: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCauseNotFound
	}
	return nil
}

// ToggleActive flips the visibility flag of a cause.
func (s *CauseService) ToggleActive(id uint) (*db.Cause, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(item).Update("active", !item.Active).Error; err != nil {
		return nil, fmt.Errorf("toggle cause: %w", err)
	}
	return item, nil
}

func encodeFeatures(features []string) (datatypes.JSON, error) {
	if features == nil {
		features = []string{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("encode features: %w", err)
	}
	return datatypes.JSON(raw), nil
}
