package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login authenticates an admin and returns a bearer token.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Username and password are required") {
		return
	}

	token, admin, err := a.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("login failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Verify returns the admin resolved by the auth middleware.
func (a *API) Verify(c *gin.Context) {
	admin, ok := adminFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// ChangePassword verifies the current password and stores a new hash.
func (a *API) ChangePassword(c *gin.Context) {
	admin, ok := adminFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req changePasswordRequest
	if !bindJSON(c, &req, "Current and new password are required") {
		return
	}

	if err := a.auth.ChangePassword(admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, service.ErrAdminNotFound):
			respondError(c, http.StatusNotFound, "Admin not found")
		default:
			logger.Error("change password failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Failed to change password")
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Password changed successfully", nil)
}
