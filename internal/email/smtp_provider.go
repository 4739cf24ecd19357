package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"shadowme_backend/internal/config"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	cfg      *config.Config
	renderer TemplateRenderer
}

func NewSMTPProvider(cfg *config.Config, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{cfg: cfg, renderer: renderer}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	if p.cfg.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP host is not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (p *SMTPProvider) SendTemplate(to, subject, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}

	return p.Send(to, subject, htmlBody)
}
