package notifications

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/sudhar3084/sriram-cab-service/domain"
)

// MailServiceImpl implements domain.Mailer over SMTP. When no SMTP host is
// configured the message is logged instead of sent, which keeps OTP flows
// usable in development.
type MailServiceImpl struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

// NewMailService creates a new SMTP mail service
func NewMailService(host string, port int, username, password, from string, logger zerolog.Logger) domain.Mailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}

	return &MailServiceImpl{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

// SendEmail implements domain.Mailer
func (m *MailServiceImpl) SendEmail(to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Str("body", body).
			Msg("smtp not configured, logging email instead")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
