package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hopefoundation/charity-backend/internal/config"
	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubNotifier records operator alerts and answers with a fixed result.
type stubNotifier struct {
	mu        sync.Mutex
	donations []*db.Donation
	contacts  []*db.ContactMessage
	result    service.NotifyResult
}

func (s *stubNotifier) SendDonationAlert(_ context.Context, d *db.Donation) service.NotifyResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations = append(s.donations, d)
	return s.result
}

func (s *stubNotifier) SendContactAlert(_ context.Context, m *db.ContactMessage) service.NotifyResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, m)
	return s.result
}

func (s *stubNotifier) donationCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.donations)
}

func (s *stubNotifier) contactCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// stubMailer signals each acknowledgement on a channel so tests can wait for
// the fire-and-forget goroutine.
type stubMailer struct {
	calls  chan string
	result service.NotifyResult
}

func newStubMailer(result service.NotifyResult) *stubMailer {
	return &stubMailer{calls: make(chan string, 8), result: result}
}

func (s *stubMailer) SendAcknowledgement(to, _ string) service.NotifyResult {
	s.calls <- to
	return s.result
}

func (s *stubMailer) waitForCall(t *testing.T) string {
	t.Helper()
	select {
	case to := <-s.calls:
		return to
	case <-time.After(2 * time.Second):
		t.Fatal("acknowledgement email was never attempted")
		return ""
	}
}

type testEnv struct {
	router   *gin.Engine
	api      *API
	db       *gorm.DB
	notifier *stubNotifier
	mailer   *stubMailer
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/uploads",
	}

	auth := service.NewAuthService(gdb, cfg.JWTSecret, time.Hour)
	notifier := &stubNotifier{result: service.NotifyResult{Success: true}}
	mailer := newStubMailer(service.NotifyResult{Success: true})

	api := NewAPI(gdb, cfg, auth, notifier, mailer)

	r := gin.New()
	registerRoutes(r, api)

	env := &testEnv{router: r, api: api, db: gdb, notifier: notifier, mailer: mailer}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return env
}

// registerRoutes wires the same route table the production router uses,
// duplicated here to avoid an import cycle with the router package.
func registerRoutes(r *gin.Engine, api *API) {
	root := r.Group("/api")

	auth := root.Group("/auth")
	auth.POST("/login", api.Login)
	auth.GET("/verify", api.RequireAuth(), api.Verify)
	auth.POST("/change-password", api.RequireAuth(), api.ChangePassword)

	causes := root.Group("/causes")
	causes.GET("", api.ListCauses)
	causes.GET("/admin/list", api.RequireAuth(), api.ListCausesAdmin)
	causes.GET("/:id", api.GetCause)
	causes.POST("", api.RequireAuth(), api.CreateCause)
	causes.PUT("/:id", api.RequireAuth(), api.UpdateCause)
	causes.DELETE("/:id", api.RequireAuth(), api.DeleteCause)
	causes.PATCH("/:id/toggle", api.RequireAuth(), api.ToggleCause)

	donations := root.Group("/donations")
	donations.POST("", api.SubmitDonation)
	donations.GET("", api.RequireAuth(), api.ListDonations)
	donations.GET("/stats", api.RequireAuth(), api.DonationStats)
	donations.GET("/:id", api.RequireAuth(), api.GetDonation)
	donations.PATCH("/:id/status", api.RequireAuth(), api.UpdateDonationStatus)

	contacts := root.Group("/contacts")
	contacts.POST("", api.SubmitContact)
	contacts.GET("", api.RequireAuth(), api.ListContacts)
	contacts.PATCH("/:id/status", api.RequireAuth(), api.UpdateContactStatus)

	gallery := root.Group("/gallery")
	gallery.GET("", api.ListGallery)
	gallery.POST("", api.RequireAuth(), api.AddGalleryImage)
	gallery.DELETE("/:id", api.RequireAuth(), api.DeleteGalleryImage)
	gallery.POST("/upload", api.RequireAuth(), api.UploadImage)

	posts := root.Group("/posts")
	posts.GET("", api.ListPosts)
	posts.GET("/:id", api.GetPost)
	posts.POST("", api.RequireAuth(), api.CreatePost)
	posts.PUT("/:id", api.RequireAuth(), api.UpdatePost)
	posts.DELETE("/:id", api.RequireAuth(), api.DeletePost)

	home := root.Group("/home")
	home.GET("", api.GetHomeContent)
	home.PUT("", api.RequireAuth(), api.UpdateHomeContent)

	settings := root.Group("/settings")
	settings.GET("", api.OptionalAuth(), api.GetSettings)
	settings.PUT("", api.RequireAuth(), api.UpdateSettings)
}

func (e *testEnv) seedAdmin(t *testing.T, username, password string) *db.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := &db.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@hopefoundation.org",
	}
	require.NoError(t, e.db.Create(admin).Error)
	return admin
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (e *testEnv) request(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
