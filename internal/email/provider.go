package email

// TemplateData holds the values interpolated into an email template.
type TemplateData map[string]interface{}

// Provider sends transactional mail.
type Provider interface {
	// Send delivers a plain message.
	Send(to, subject, htmlBody string) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to, subject, templateName string, data TemplateData) error
}

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
