package services

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"affiliatehub/internal/models"
)

type EmailService interface {
	SendLeadNotification(lead *models.Lead) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewEmailService notifies the sales inbox `to` of every new lead.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, toEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
		to:     toEmail,
	}
}

func (s *emailService) SendLeadNotification(lead *models.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", "Nieuwe lead: "+lead.CompanyName)
	m.SetBody("text/html", leadNotificationBody(lead))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}
	return nil
}

func leadNotificationBody(lead *models.Lead) string {
	kvk := lead.KvkNumber
	if kvk == "" {
		kvk = "-"
	}
	return fmt.Sprintf(`
		<h2>Nieuwe lead: %s</h2>
		<p>KVK-nummer: %s</p>
		<p>Contactpersoon: %s %s<br>%s<br>%s</p>
		<p>%s</p>
	`,
		html.EscapeString(lead.CompanyName),
		html.EscapeString(kvk),
		html.EscapeString(lead.ContactPersonFirstname),
		html.EscapeString(lead.ContactPersonLastname),
		html.EscapeString(lead.ContactEmail),
		html.EscapeString(lead.ContactPhone),
		html.EscapeString(lead.Notes),
	)
}
