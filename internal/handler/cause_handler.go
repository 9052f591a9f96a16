package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type causeRequest struct {
	Title            string   `json:"title"`
	Icon             string   `json:"icon"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Image            string   `json:"image"`
	Features         []string `json:"features"`
	Active           *bool    `json:"active"`
}

func (r causeRequest) toInput() service.CauseInput {
	return service.CauseInput{
		Title:            r.Title,
		Icon:             r.Icon,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		Image:            r.Image,
		Features:         r.Features,
		Active:           r.Active,
	}
}

// ListCauses returns the active causes for the public site.
func (a *API) ListCauses(c *gin.Context) {
	items, err := a.causes.ListActive()
	if err != nil {
		logger.Error("list causes failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch causes")
		return
	}
	respondSuccess(c, http.StatusOK, "", items)
}

// ListCausesAdmin returns every cause regardless of visibility.
func (a *API) ListCausesAdmin(c *gin.Context) {
	items, err := a.causes.ListAll()
	if err != nil {
		logger.Error("list admin causes failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch causes")
		return
	}
	respondSuccess(c, http.StatusOK, "", items)
}

// GetCause returns one cause by id.
func (a *API) GetCause(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.causes.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCauseNotFound) {
			respondError(c, http.StatusNotFound, "Cause not found")
			return
		}
		logger.Error("get cause failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch cause")
		return
	}
	respondSuccess(c, http.StatusOK, "", item)
}

// CreateCause persists a new cause.
func (a *API) CreateCause(c *gin.Context) {
	var req causeRequest
	if !bindJSON(c, &req, "Valid cause details are required") {
		return
	}

	item, err := a.causes.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCauseTitleRequired) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("create cause failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to create cause")
		return
	}
	respondSuccess(c, http.StatusCreated, "Cause created successfully", item)
}

// UpdateCause replaces the stored fields of a cause.
func (a *API) UpdateCause(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req causeRequest
	if !bindJSON(c, &req, "Valid cause details are required") {
		return
	}

	item, err := a.causes.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCauseNotFound):
			respondError(c, http.StatusNotFound, "Cause not found")
		case errors.Is(err, service.ErrCauseTitleRequired):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("update cause failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to update cause")
		}
		return
	}
	respondSuccess(c, http.StatusOK, "Cause updated successfully", item)
}

// DeleteCause removes a cause.
func (a *API) DeleteCause(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.causes.Delete(id); err != nil {
		if errors.Is(err, service.ErrCauseNotFound) {
			respondError(c, http.StatusNotFound, "Cause not found")
			return
		}
		logger.Error("delete cause failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to delete cause")
		return
	}
	respondSuccess(c, http.StatusOK, "Cause deleted successfully", nil)
}

// ToggleCause flips the visibility flag of a cause.
func (a *API) ToggleCause(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.causes.ToggleActive(id)
	if err != nil {
		if errors.Is(err, service.ErrCauseNotFound) {
			respondError(c, http.StatusNotFound, "Cause not found")
			return
		}
		logger.Error("toggle cause failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to toggle cause status")
		return
	}
	respondSuccess(c, http.StatusOK, "Cause status toggled successfully", item)
}
