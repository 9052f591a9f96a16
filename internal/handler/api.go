package handler

import (
	"context"

	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/config"
	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/service"
)

// OperatorNotifier alerts the organization's operators about new
// submissions. Implemented by service.TelegramService; stubbed in tests.
type OperatorNotifier interface {
	SendDonationAlert(ctx context.Context, d *db.Donation) service.NotifyResult
	SendContactAlert(ctx context.Context, m *db.ContactMessage) service.NotifyResult
}

// AcknowledgementSender emails the submitting user. Implemented by
// service.EmailService.
type AcknowledgementSender interface {
	SendAcknowledgement(to, name string) service.NotifyResult
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	auth      *service.AuthService
	donations *service.DonationService
	contacts  *service.ContactService
	causes    *service.CauseService
	posts     *service.PostService
	gallery   *service.GalleryService
	home      *service.HomeService
	settings  *service.SettingsService
	notifier  OperatorNotifier
	mailer    AcknowledgementSender
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg *config.Config, auth *service.AuthService,
	notifier OperatorNotifier, mailer AcknowledgementSender) *API {
	return &API{
		db:        gdb,
		auth:      auth,
		donations: service.NewDonationService(gdb),
		contacts:  service.NewContactService(gdb),
		causes:    service.NewCauseService(gdb),
		posts:     service.NewPostService(gdb),
		gallery:   service.NewGalleryService(gdb),
		home:      service.NewHomeService(gdb),
		settings:  service.NewSettingsService(gdb),
		notifier:  notifier,
		mailer:    mailer,
		uploadDir: cfg.UploadDir,
		uploadURL: cfg.UploadURLPath,
	}
}

// SetOperatorNotifier swaps the operator alert dispatcher, mainly for tests.
func (a *API) SetOperatorNotifier(n OperatorNotifier) {
	a.notifier = n
}

// SetAcknowledgementSender swaps the email dispatcher, mainly for tests.
func (a *API) SetAcknowledgementSender(m AcknowledgementSender) {
	a.mailer = m
}
