package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/db"
)

var ErrHomeContentNotFound = errors.New("home content not found")

// HomeService manages the singleton landing-page content row.
type HomeService struct {
	db *gorm.DB
}

// HomeContentInput represents the full editable landing-page block.
type HomeContentInput struct {
	HeroTitle         string
	HeroTagline       string
	HeroImage         string
	PeopleHelped      int
	EventsDone        int
	Volunteers        int
	CommunitiesServed int
	IntroTitle        string
	IntroText         string
}

// NewHomeService creates a HomeService instance.
func NewHomeService(gdb *gorm.DB) *HomeService {
	return &HomeService{db: gdb}
}

// Get returns the singleton row, preferring the newest should legacy data
// ever contain more than one.
func (s *HomeService) Get() (*db.HomeContent, error) {
	var item db.HomeContent
	if err := s.db.Order("id desc").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeContentNotFound
		}
		return nil, fmt.Errorf("load home content: %w", err)
	}
	return &item, nil
}

// Update applies the singleton upsert: insert when the table is empty,
// otherwise update the one existing row in place. A second row is never
// created.
func (s *HomeService) Update(input HomeContentInput) (*db.HomeContent, error) {
	var existing db.HomeContent
	err := s.db.First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check home content: %w", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := db.HomeContent{
			HeroTitle:         input.HeroTitle,
			HeroTagline:       input.HeroTagline,
			HeroImage:         input.HeroImage,
			PeopleHelped:      input.PeopleHelped,
			EventsDone:        input.EventsDone,
			Volunteers:        input.Volunteers,
			CommunitiesServed: input.CommunitiesServed,
			IntroTitle:        input.IntroTitle,
			IntroText:         input.IntroText,
		}
		if err := s.db.Create(&created).Error; err != nil {
			return nil, fmt.Errorf("insert home content: %w", err)
		}
		return &created, nil
	}

	// Map update so zero values (e.g. a stat reset to 0) are written too.
	updates := map[string]any{
		"hero_title":         input.HeroTitle,
		"hero_tagline":       input.HeroTagline,
		"hero_image":         input.HeroImage,
		"people_helped":      input.PeopleHelped,
		"events_done":        input.EventsDone,
		"volunteers":         input.Volunteers,
		"communities_served": input.CommunitiesServed,
		"intro_title":        input.IntroTitle,
		"intro_text":         input.IntroText,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update home content: %w", err)
	}
	return s.Get()
}
