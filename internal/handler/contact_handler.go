package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact is the public contact-form intake. Same ordering contract as
// SubmitDonation: persist first, then best-effort notifications.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "Please provide name, email and message") {
		return
	}

	contact, err := a.contacts.Create(service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactFieldsMissing),
			errors.Is(err, service.ErrEmailInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("submit contact failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	if res := a.notifier.SendContactAlert(c.Request.Context(), contact); !res.Success {
		logger.Warn("contact operator alert failed", "contact_id", contact.ID, "reason", res.Reason)
	}

	go func(to, name string, id uint) {
		if res := a.mailer.SendAcknowledgement(to, name); !res.Success {
			logger.Warn("contact acknowledgement failed", "contact_id", id, "reason", res.Reason)
		}
	}(contact.Email, contact.Name, contact.ID)

	respondSuccess(c, http.StatusCreated, "Message sent successfully", gin.H{"id": contact.ID})
}

// ListContacts returns all contact messages for the admin.
func (a *API) ListContacts(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		logger.Error("list contacts failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	respondSuccess(c, http.StatusOK, "", items)
}

// UpdateContactStatus sets the triage status of a contact message.
func (a *API) UpdateContactStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req statusRequest
	if !bindJSON(c, &req, "Status is required") {
		return
	}

	if err := a.contacts.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, http.StatusNotFound, "Contact message not found")
		case errors.Is(err, service.ErrStatusRequired):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("update contact status failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}
	respondSuccess(c, http.StatusOK, "Status updated", nil)
}
