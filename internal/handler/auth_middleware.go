package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
)

const adminContextKey = "__admin"

// RequireAuth guards protected routes: it extracts the bearer token, verifies
// it and stores the resolved admin in the request context. Any failure ends
// the request with a 401 envelope before the handler runs.
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := a.auth.VerifyToken(extractBearerToken(c))
		if err != nil {
			if errors.Is(err, service.ErrAdminNotFound) {
				respondError(c, http.StatusNotFound, "Admin not found")
			} else {
				respondError(c, http.StatusUnauthorized, "Unauthorized")
			}
			c.Abort()
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// OptionalAuth resolves the admin when a valid bearer token is present but
// never rejects the request. Used where a public route reveals extra fields
// to authenticated callers.
func (a *API) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, err := a.auth.VerifyToken(extractBearerToken(c)); err == nil {
			c.Set(adminContextKey, admin)
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// adminFromContext returns the admin stored by the auth middleware.
func adminFromContext(c *gin.Context) (*db.Admin, bool) {
	value, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*db.Admin)
	return admin, ok
}
