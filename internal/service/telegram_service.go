package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TelegramService delivers operator alerts through the Telegram Bot API.
// Missing credentials leave the service disabled: every send short-circuits
// with a soft failure instead of erroring.
type TelegramService struct {
	httpClient httpDoer
	baseURL    string
	botToken   string
	chatID     string
}

// NewTelegramService constructs a dispatcher for the given bot credentials.
// Either credential may be empty, which disables sending.
func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.telegram.org",
		botToken:   strings.TrimSpace(botToken),
		chatID:     strings.TrimSpace(chatID),
	}
}

// SetHTTPClient replaces the outbound HTTP client, mainly for tests.
func (s *TelegramService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.httpClient = client
}

// SetBaseURL overrides the Telegram API base address for tests.
func (s *TelegramService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// IsConfigured reports whether both bot token and chat id are present.
func (s *TelegramService) IsConfigured() bool {
	return s.botToken != "" && s.chatID != ""
}

// SendMessage posts an HTML-formatted message to the configured chat.
func (s *TelegramService) SendMessage(ctx context.Context, text string) NotifyResult {
	if !s.IsConfigured() {
		logger.Debug("telegram not configured, skipping notification")
		return notifyFailed("telegram not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    s.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return notifyFailed("encode telegram payload: " + err.Error())
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return notifyFailed("build telegram request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn("telegram request failed", "error", err.Error())
		return notifyFailed("telegram request failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(body))
		logger.Warn("telegram rejected message", "status", resp.Status, "body", msg)
		return notifyFailed("telegram returned " + resp.Status)
	}

	return notifyOK()
}

// SendDonationAlert notifies operators about a freshly persisted donation.
func (s *TelegramService) SendDonationAlert(ctx context.Context, d *db.Donation) NotifyResult {
	var b strings.Builder
	b.WriteString("🎉 <b>NEW DONATION RECEIVED!</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Donor:</b> %s\n", sanitizeNotifyText(d.DonorName))
	fmt.Fprintf(&b, "💰 <b>Amount:</b> $%.2f\n", d.Amount)
	if d.Email != "" {
		fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", sanitizeNotifyText(d.Email))
	}
	if d.Phone != "" {
		fmt.Fprintf(&b, "📱 <b>Phone:</b> %s\n", sanitizeNotifyText(d.Phone))
	}
	if d.Message != "" {
		fmt.Fprintf(&b, "💬 <b>Message:</b> %s\n", sanitizeNotifyText(d.Message))
	}
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s\n", d.DonationDate.Format("2006-01-02 15:04:05"))
	b.WriteString("\n✨ Thank you for your generosity!")

	return s.SendMessage(ctx, b.String())
}

// SendContactAlert notifies operators about a new contact message.
func (s *TelegramService) SendContactAlert(ctx context.Context, m *db.ContactMessage) NotifyResult {
	orNA := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "N/A"
		}
		return sanitizeNotifyText(v)
	}

	var b strings.Builder
	b.WriteString("📩 <b>New Contact Message</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", sanitizeNotifyText(m.Name))
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", sanitizeNotifyText(m.Email))
	fmt.Fprintf(&b, "📱 <b>Phone:</b> %s\n", orNA(m.Phone))
	fmt.Fprintf(&b, "📝 <b>Subject:</b> %s\n", orNA(m.Subject))
	fmt.Fprintf(&b, "💬 <b>Message:</b> %s\n", sanitizeNotifyText(m.Message))
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s", m.CreatedAt.Format("2006-01-02 15:04:05"))

	return s.SendMessage(ctx, b.String())
}
