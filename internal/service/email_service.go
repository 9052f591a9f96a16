package service

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/hopefoundation/charity-backend/pkg/logger"
)

const emailSiteName = "Hope Foundation"

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService sends the acknowledgement email to a submitting user over
// authenticated SMTP. Like TelegramService it is configured-or-disabled and
// never returns an error to its caller.
type EmailService struct {
	sender   mailSender
	username string
	password string
}

// NewEmailService constructs the dispatcher. Missing SMTP credentials leave
// it disabled.
func NewEmailService(host string, port int, username, password string) *EmailService {
	s := &EmailService{
		username: strings.TrimSpace(username),
		password: strings.TrimSpace(password),
	}
	if s.IsConfigured() {
		s.sender = gomail.NewDialer(host, port, s.username, s.password)
	}
	return s
}

// SetSender replaces the SMTP sender, mainly for tests. A non-nil sender
// also marks the service as configured.
func (s *EmailService) SetSender(sender mailSender) {
	s.sender = sender
}

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return (s.username != "" && s.password != "") || s.sender != nil
}

// SendAcknowledgement emails the personalized "we received your message"
// template to the given address.
func (s *EmailService) SendAcknowledgement(to, name string) NotifyResult {
	if !s.IsConfigured() || s.sender == nil {
		logger.Debug("email not configured, skipping acknowledgement")
		return notifyFailed("email not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.username, emailSiteName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("We have received your message - %s", emailSiteName))
	m.SetBody("text/html", acknowledgementBody(name))

	if err := s.sender.DialAndSend(m); err != nil {
		logger.Warn("acknowledgement email failed", "to", to, "error", err.Error())
		return notifyFailed("send email: " + err.Error())
	}

	logger.Info("acknowledgement email sent", "to", to)
	return notifyOK()
}

func acknowledgementBody(name string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
			<h2 style="color: #4a5568;">Hello %s,</h2>
			<p style="color: #4a5568; line-height: 1.6;">
				Thank you for reaching out to <strong>%s</strong>. We have successfully received your message.
			</p>
			<p style="color: #4a5568; line-height: 1.6;">
				One of our team members will review your enquiry and get back to you as soon as possible.
			</p>
			<div style="background-color: #f7fafc; padding: 15px; border-radius: 5px; margin: 20px 0;">
				<p style="margin: 0; color: #718096; font-size: 14px;">
					This is an automated message. Please do not reply directly to this email.
				</p>
			</div>
			<p style="color: #4a5568;">
				Warm regards,<br>
				<strong>The %s Team</strong>
			</p>
		</div>
	`, sanitizeNotifyText(name), emailSiteName, emailSiteName)
}
