package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRenderingAndAuthorAttribution(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "editor", "admin123")
	token := env.login(t, "editor", "admin123")

	w := env.request(t, http.MethodPost, "/api/posts", gin.H{
		"title":   "Winter Relief Drive",
		"content": "We reached **1,200 families** this season.\n\n<script>alert(1)</script>",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/api/posts/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeBody(t, w)["data"].(map[string]any)

	html := view["content_html"].(string)
	assert.Contains(t, html, "<strong>1,200 families</strong>")
	assert.NotContains(t, html, "<script>")
	assert.Equal(t, "editor", view["author_name"])
}

func TestPostListOrderAndValidation(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "editor", "admin123")
	token := env.login(t, "editor", "admin123")

	w := env.request(t, http.MethodPost, "/api/posts", gin.H{"title": "No body"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, title := range []string{"First", "Second"} {
		w = env.request(t, http.MethodPost, "/api/posts", gin.H{
			"title":   title,
			"content": "body",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = env.request(t, http.MethodGet, "/api/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].(map[string]any)["title"], "newest first")
}

func TestPostUpdateAndDelete(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t, "editor", "admin123")
	token := env.login(t, "editor", "admin123")

	w := env.request(t, http.MethodPost, "/api/posts", gin.H{
		"title":   "Draft",
		"content": "first version",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPut, "/api/posts/1", gin.H{
		"title":   "Published",
		"content": "final version",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/posts/1", nil, "")
	view := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Published", view["title"])

	w = env.request(t, http.MethodDelete, "/api/posts/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/posts/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodDelete, "/api/posts/1", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
