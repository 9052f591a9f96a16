package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauseLifecycle(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	w := env.request(t, http.MethodPost, "/api/causes", gin.H{
		"title":             "Clean Water",
		"short_description": "Wells for rural villages",
		"features":          []string{"50 wells", "10 communities"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, created["active"], "new causes default to visible")

	// Visible on the public listing.
	w = env.request(t, http.MethodGet, "/api/causes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["data"].([]any), 1)

	// Toggle hides it from the public but not the admin listing.
	w = env.request(t, http.MethodPatch, "/api/causes/1/toggle", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["data"].(map[string]any)["active"])

	w = env.request(t, http.MethodGet, "/api/causes", nil, "")
	assert.Empty(t, decodeBody(t, w)["data"])

	w = env.request(t, http.MethodGet, "/api/causes/admin/list", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]any), 1)

	// Detail fetch ignores the visibility flag.
	w = env.request(t, http.MethodGet, "/api/causes/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Clean Water", detail["title"])

	w = env.request(t, http.MethodPut, "/api/causes/1", gin.H{
		"title": "Clean Water Initiative",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodDelete, "/api/causes/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/causes/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCauseRequiresTitle(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "admin", "admin123")
	token := env.login(t, "admin", "admin123")

	w := env.request(t, http.MethodPost, "/api/causes", gin.H{
		"short_description": "missing title",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestCauseMutationsRequireAuth(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/causes", gin.H{"title": "Sneaky"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodGet, "/api/causes/admin/list", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
