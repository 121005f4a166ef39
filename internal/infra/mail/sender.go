package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/siyam-display/catalog-api/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadNotification mails a captured lead to the sales inbox.
func (s *EmailSender) SendLeadNotification(to string, lead queue.LeadCapturedPayload) error {
	data := LeadNotificationData{
		Name:     lead.Name,
		Email:    lead.Email,
		Company:  lead.Company,
		Phone:    lead.Phone,
		SiyamRef: lead.SiyamRef,
	}

	tmplPath := filepath.Join("templates", "lead_notification.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("reading mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering mail template: %w", err)
	}

	subject := fmt.Sprintf("New enquiry from %s", lead.Name)
	if lead.SiyamRef != "" {
		subject = fmt.Sprintf("New interest in %s from %s", lead.SiyamRef, lead.Name)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP mail: %w", err)
	}

	return nil
}
