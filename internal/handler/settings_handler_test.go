package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopefoundation/charity-backend/internal/db"
)

func TestGetSettingsRedactsBotTokenForAnonymous(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	w := env.request(t, http.MethodPut, "/api/settings", gin.H{
		"site_name":          "Hope Foundation",
		"telegram_bot_token": "123456:secret",
		"telegram_chat_id":   "-100200300",
		"contact_email":      "info@hopefoundation.org",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Anonymous read: secret stripped, the rest visible.
	w = env.request(t, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Hope Foundation", data["site_name"])
	assert.Equal(t, "-100200300", data["telegram_chat_id"])
	assert.NotContains(t, data, "telegram_bot_token")

	// Authenticated read gets the secret back.
	w = env.request(t, http.MethodGet, "/api/settings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "123456:secret", data["telegram_bot_token"])

	// A bad token on the optional-auth route degrades to anonymous, not 401.
	w = env.request(t, http.MethodGet, "/api/settings", nil, "bogus")
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.NotContains(t, data, "telegram_bot_token")
}

func TestGetSettingsEmptyTable(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodGet, "/api/settings", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Settings not found", decodeBody(t, w)["message"])
}

func TestUpdateSettingsUpsertsSingleRow(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	for _, name := range []string{"First", "Second"} {
		w := env.request(t, http.MethodPut, "/api/settings", gin.H{"site_name": name}, token)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	require.NoError(t, env.db.Model(&db.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w := env.request(t, http.MethodGet, "/api/settings", nil, "")
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Second", data["site_name"])
}

func TestHomeContentRoundTrip(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	w := env.request(t, http.MethodGet, "/api/home", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodPut, "/api/home", gin.H{
		"hero_title":    "Every act of kindness counts",
		"people_helped": 1200,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/home", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Every act of kindness counts", data["hero_title"])
	assert.EqualValues(t, 1200, data["people_helped"])
}
