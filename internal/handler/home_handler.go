package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type homeContentRequest struct {
	HeroTitle         string `json:"hero_title"`
	HeroTagline       string `json:"hero_tagline"`
	HeroImage         string `json:"hero_image"`
	PeopleHelped      int    `json:"people_helped"`
	EventsDone        int    `json:"events_done"`
	Volunteers        int    `json:"volunteers"`
	CommunitiesServed int    `json:"communities_served"`
	IntroTitle        string `json:"intro_title"`
	IntroText         string `json:"intro_text"`
}

// GetHomeContent returns the landing-page content block.
func (a *API) GetHomeContent(c *gin.Context) {
	item, err := a.home.Get()
	if err != nil {
		if errors.Is(err, service.ErrHomeContentNotFound) {
			respondError(c, http.StatusNotFound, "Home content not found")
			return
		}
		logger.Error("get home content failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch home content")
		return
	}
	respondSuccess(c, http.StatusOK, "", item)
}

// UpdateHomeContent applies the singleton upsert for the landing page.
func (a *API) UpdateHomeContent(c *gin.Context) {
	var req homeContentRequest
	if !bindJSON(c, &req, "Valid home content is required") {
		return
	}

	item, err := a.home.Update(service.HomeContentInput{
		HeroTitle:         req.HeroTitle,
		HeroTagline:       req.HeroTagline,
		HeroImage:         req.HeroImage,
		PeopleHelped:      req.PeopleHelped,
		EventsDone:        req.EventsDone,
		Volunteers:        req.Volunteers,
		CommunitiesServed: req.CommunitiesServed,
		IntroTitle:        req.IntroTitle,
		IntroText:         req.IntroText,
	})
	if err != nil {
		logger.Error("update home content failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to update home content")
		return
	}
	respondSuccess(c, http.StatusOK, "Home content updated successfully", item)
}
