package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentSanitizer = bluemonday.UGCPolicy()
)

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// postView is the public projection of a post: the raw markdown plus the
// rendered, sanitized HTML and the (nullable) author name.
type postView struct {
	db.Post
	ContentHTML string `json:"content_html"`
	AuthorName  string `json:"author_name,omitempty"`
}

func newPostView(p db.Post) postView {
	view := postView{Post: p, ContentHTML: renderMarkdown(p.Content)}
	if p.Author != nil {
		view.AuthorName = p.Author.Username
	}
	return view
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		// Fall back to the raw text rather than failing the read.
		return contentSanitizer.Sanitize(content)
	}
	return contentSanitizer.Sanitize(buf.String())
}

// ListPosts returns all posts for the public site.
func (a *API) ListPosts(c *gin.Context) {
	items, err := a.posts.List()
	if err != nil {
		logger.Error("list posts failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	views := make([]postView, 0, len(items))
	for _, item := range items {
		views = append(views, newPostView(item))
	}
	respondSuccess(c, http.StatusOK, "", views)
}

// GetPost returns one post by id.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		logger.Error("get post failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	respondSuccess(c, http.StatusOK, "", newPostView(*item))
}

// CreatePost persists a post authored by the authenticated admin.
func (a *API) CreatePost(c *gin.Context) {
	admin, ok := adminFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req postRequest
	if !bindJSON(c, &req, "Valid post details are required") {
		return
	}

	item, err := a.posts.Create(admin.ID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostTitleMissing), errors.Is(err, service.ErrPostBodyMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("create post failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}
	respondSuccess(c, http.StatusCreated, "Post created successfully", item)
}

// UpdatePost replaces the editable fields of a post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req postRequest
	if !bindJSON(c, &req, "Valid post details are required") {
		return
	}

	item, err := a.posts.Update(id, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, service.ErrPostTitleMissing), errors.Is(err, service.ErrPostBodyMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("update post failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}
	respondSuccess(c, http.StatusOK, "Post updated successfully", item)
}

// DeletePost removes a post.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		logger.Error("delete post failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	respondSuccess(c, http.StatusOK, "Post deleted successfully", nil)
}
