package db

import "time"

// HomeContent is the hero/statistics block of the landing page. The table is
// a singleton: at most one row, updated in place.
type HomeContent struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	HeroTitle         string    `gorm:"size:255;not null" json:"hero_title"`
	HeroTagline       string    `gorm:"type:text" json:"hero_tagline,omitempty"`
	HeroImage         string    `gorm:"size:255" json:"hero_image,omitempty"`
	PeopleHelped      int       `gorm:"default:0" json:"people_helped"`
	EventsDone        int       `gorm:"default:0" json:"events_done"`
	Volunteers        int       `gorm:"default:0" json:"volunteers"`
	CommunitiesServed int       `gorm:"default:0" json:"communities_served"`
	IntroTitle        string    `gorm:"size:255" json:"intro_title,omitempty"`
	IntroText         string    `gorm:"type:text" json:"intro_text,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (HomeContent) TableName() string {
	return "home_content"
}
