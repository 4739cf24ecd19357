package email

import "sync"

// NoopProvider swallows all mail. Used when email is disabled and in tests.
type NoopProvider struct {
	mu   sync.Mutex
	sent []SentMessage
}

// SentMessage records one delivery attempt for inspection in tests.
type SentMessage struct {
	To           string
	Subject      string
	TemplateName string
	Data         TemplateData
}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, SentMessage{To: to, Subject: subject})
	return nil
}

func (p *NoopProvider) SendTemplate(to, subject, templateName string, data TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, SentMessage{To: to, Subject: subject, TemplateName: templateName, Data: data})
	return nil
}

// Sent returns a copy of everything delivered so far.
func (p *NoopProvider) Sent() []SentMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]SentMessage, len(p.sent))
	copy(out, p.sent)
	return out
}
