package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type galleryRequest struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// ListGallery returns all gallery images for the public site.
func (a *API) ListGallery(c *gin.Context) {
	items, err := a.gallery.List()
	if err != nil {
		logger.Error("list gallery failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to fetch gallery images")
		return
	}
	respondSuccess(c, http.StatusOK, "", items)
}

// AddGalleryImage records an already uploaded image in the gallery.
func (a *API) AddGalleryImage(c *gin.Context) {
	var req galleryRequest
	if !bindJSON(c, &req, "Image path is required") {
		return
	}

	item, err := a.gallery.Add(service.GalleryInput{Image: req.Image, Caption: req.Caption})
	if err != nil {
		if errors.Is(err, service.ErrGalleryImageMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("add gallery image failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to add image")
		return
	}
	respondSuccess(c, http.StatusCreated, "Image added successfully", item)
}

// DeleteGalleryImage removes the row and then best-effort deletes the
// backing file when it lives under the managed upload path. A failed unlink
// never fails the request: the row delete is the durability boundary.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	imagePath, err := a.gallery.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, "Image not found")
			return
		}
		logger.Error("delete gallery image failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	a.removeUploadedFile(imagePath)

	respondSuccess(c, http.StatusOK, "Image deleted successfully", nil)
}

// removeUploadedFile unlinks a stored file when the recorded path points
// into the managed upload directory. External URLs are left alone.
func (a *API) removeUploadedFile(imagePath string) {
	prefix := strings.TrimPrefix(a.uploadURL, "/") + "/"
	trimmed := strings.TrimPrefix(imagePath, "/")
	if !strings.HasPrefix(trimmed, prefix) {
		return
	}

	filename := filepath.Base(trimmed)
	if err := os.Remove(filepath.Join(a.uploadDir, filename)); err != nil {
		logger.Warn("failed to remove uploaded file", "path", imagePath, "error", err.Error())
	}
}
