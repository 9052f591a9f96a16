package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
)

func TestSubmitDonationSucceedsWhenNotificationsFail(t *testing.T) {
	env := setupEnv(t)
	env.notifier.result = service.NotifyResult{Success: false, Reason: "telegram down"}
	env.mailer.result = service.NotifyResult{Success: false, Reason: "smtp down"}

	w := env.request(t, http.MethodPost, "/api/donations", gin.H{
		"donor_name": "Priya Sharma",
		"amount":     50.0,
		"email":      "priya@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Thank you for your generous donation!", body["message"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["transaction_id"])
	assert.Equal(t, "received", data["status"])
	assert.Equal(t, "Online", data["payment_method"])

	var saved db.Donation
	require.NoError(t, env.db.First(&saved).Error)
	assert.EqualValues(t, saved.ID, data["id"], "response echoes the persisted row")
	assert.Equal(t, saved.TransactionID, data["transaction_id"])

	assert.Equal(t, 1, env.notifier.donationCalls())
	assert.Equal(t, "priya@example.com", env.mailer.waitForCall(t))
}

func TestSubmitDonationWithoutEmailSkipsAcknowledgement(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/donations", gin.H{
		"donor_name": "Anonymous",
		"amount":     10.0,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, 1, env.notifier.donationCalls())
	select {
	case to := <-env.mailer.calls:
		t.Fatalf("unexpected acknowledgement to %s", to)
	default:
	}
}

func TestSubmitDonationRejectsBadInputBeforeNotifying(t *testing.T) {
	env := setupEnv(t)

	cases := []struct {
		name    string
		payload gin.H
	}{
		{"missing donor name", gin.H{"amount": 25.0}},
		{"zero amount", gin.H{"donor_name": "Priya", "amount": 0}},
		{"negative amount", gin.H{"donor_name": "Priya", "amount": -5.0}},
		{"malformed email", gin.H{"donor_name": "Priya", "amount": 25.0, "email": "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/donations", tc.payload, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}

	var count int64
	require.NoError(t, env.db.Model(&db.Donation{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, env.notifier.donationCalls(), "rejected submissions never notify")
}

func TestDonationAdminEndpoints(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	for i := 0; i < 3; i++ {
		w := env.request(t, http.MethodPost, "/api/donations", gin.H{
			"donor_name": fmt.Sprintf("Donor %d", i),
			"amount":     float64(10 * (i + 1)),
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.request(t, http.MethodGet, "/api/donations?limit=2", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.EqualValues(t, 3, data["total"])
	assert.Len(t, data["donations"], 2)

	w = env.request(t, http.MethodGet, "/api/donations/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)["data"].(map[string]any)
	total := stats["total"].(map[string]any)
	assert.EqualValues(t, 3, total["count"])
	assert.EqualValues(t, 60, total["amount"])

	w = env.request(t, http.MethodPatch, "/api/donations/1/status", gin.H{"status": "completed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/donations/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	donation := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "completed", donation["status"])

	w = env.request(t, http.MethodPatch, "/api/donations/999/status", gin.H{"status": "completed"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
