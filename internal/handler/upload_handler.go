package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hopefoundation/charity-backend/pkg/logger"
)

// UploadImage stores a multipart image under the managed upload directory
// and returns its public URL path.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		logger.Error("failed to create upload dir", "dir", a.uploadDir, "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		logger.Error("failed to save upload", "path", filePath, "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), newFilename)
	respondSuccess(c, http.StatusOK, "File uploaded successfully", gin.H{
		"url":      fileURL,
		"filename": newFilename,
	})
}
