package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type donationRequest struct {
	DonorName     string  `json:"donor_name"`
	Amount        float64 `json:"amount"`
	Cause         string  `json:"cause"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Message       string  `json:"message"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitDonation is the public donation intake. The insert is the durability
// boundary: once it succeeds the request succeeds, no matter what the
// notification providers do. The operator alert is awaited but its failure
// only logged; the email acknowledgement is fired in a goroutine and never
// awaited so delivery latency cannot delay the response.
func (a *API) SubmitDonation(c *gin.Context) {
	var req donationRequest
	if !bindJSON(c, &req, "Valid donation details are required") {
		return
	}

	donation, err := a.donations.Create(service.DonationInput{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		Cause:         req.Cause,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDonorNameRequired),
			errors.Is(err, service.ErrAmountInvalid),
			errors.Is(err, service.ErrEmailInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("submit donation failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to process donation")
		}
		return
	}

	if res := a.notifier.SendDonationAlert(c.Request.Context(), donation); !res.Success {
		logger.Warn("donation operator alert failed", "donation_id", donation.ID, "reason", res.Reason)
	}

	if donation.Email != "" {
		go func(to, name string, id uint) {
			if res := a.mailer.SendAcknowledgement(to, name); !res.Success {
				logger.Warn("donation acknowledgement failed", "donation_id", id, "reason", res.Reason)
			}
		}(donation.Email, donation.DonorName, donation.ID)
	}

	respondSuccess(c, http.StatusCreated, "Thank you for your generous donation!", donation)
}

// ListDonations returns a filtered page of donations for the admin.
func (a *API) ListDonations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := a.donations.List(service.DonationFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("list donations failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{
		"donations": result.Donations,
		"total":     result.Total,
		"limit":     result.Limit,
		"offset":    result.Offset,
	})
}

// DonationStats returns the aggregate dashboard numbers.
func (a *API) DonationStats(c *gin.Context) {
	stats, err := a.donations.Stats()
	if err != nil {
		logger.Error("donation stats failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	respondSuccess(c, http.StatusOK, "", stats)
}

// GetDonation returns one donation by id.
func (a *API) GetDonation(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	donation, err := a.donations.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			respondError(c, http.StatusNotFound, "Donation not found")
			return
		}
		logger.Error("get donation failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch donation")
		return
	}
	respondSuccess(c, http.StatusOK, "", donation)
}

// UpdateDonationStatus sets the operator-defined status.
func (a *API) UpdateDonationStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req statusRequest
	if !bindJSON(c, &req, "Status is required") {
		return
	}

	if err := a.donations.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrDonationNotFound):
			respondError(c, http.StatusNotFound, "Donation not found")
		case errors.Is(err, service.ErrStatusRequired):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("update donation status failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to update donation status")
		}
		return
	}
	respondSuccess(c, http.StatusOK, "Donation status updated successfully", nil)
}
