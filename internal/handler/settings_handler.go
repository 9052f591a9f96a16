package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type settingsRequest struct {
	SiteName         string `json:"site_name"`
	Tagline          string `json:"tagline"`
	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	ContactAddress   string `json:"contact_address"`
}

// settingsPayload shapes the response. The bot token is a secret and only
// included for authenticated callers.
func settingsPayload(s *db.SiteSettings, includeSecret bool) gin.H {
	payload := gin.H{
		"id":               s.ID,
		"site_name":        s.SiteName,
		"tagline":          s.Tagline,
		"telegram_chat_id": s.TelegramChatID,
		"contact_email":    s.ContactEmail,
		"contact_phone":    s.ContactPhone,
		"contact_address":  s.ContactAddress,
		"updated_at":       s.UpdatedAt,
	}
	if includeSecret {
		payload["telegram_bot_token"] = s.TelegramBotToken
	}
	return payload
}

// GetSettings returns the site settings. Runs behind OptionalAuth: a valid
// bearer token unlocks the bot-token field, everyone else gets it stripped.
func (a *API) GetSettings(c *gin.Context) {
	item, err := a.settings.Get()
	if err != nil {
		if errors.Is(err, service.ErrSettingsNotFound) {
			respondError(c, http.StatusNotFound, "Settings not found")
			return
		}
		logger.Error("get settings failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	_, authenticated := adminFromContext(c)
	respondSuccess(c, http.StatusOK, "", settingsPayload(item, authenticated))
}

// UpdateSettings applies the singleton upsert for the site settings.
func (a *API) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if !bindJSON(c, &req, "Valid settings are required") {
		return
	}

	item, err := a.settings.Update(service.SettingsInput{
		SiteName:         req.SiteName,
		Tagline:          req.Tagline,
		TelegramBotToken: req.TelegramBotToken,
		TelegramChatID:   req.TelegramChatID,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		ContactAddress:   req.ContactAddress,
	})
	if err != nil {
		logger.Error("update settings failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	respondSuccess(c, http.StatusOK, "Settings updated successfully", settingsPayload(item, true))
}
