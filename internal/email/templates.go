package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the application service notifications.
const (
	TemplateApplicationAccepted = "application_accepted"
	TemplateApplicationRejected = "application_rejected"
)

var defaultTemplates = map[string]string{
	TemplateApplicationAccepted: `<html><body>
<p>Hi {{.StudentName}},</p>
<p>Good news! <b>{{.CompanyName}}</b> accepted your application for <b>{{.OpportunityTitle}}</b>.</p>
<p>Open the app to message them and arrange your shadowing visit.</p>
</body></html>`,
	TemplateApplicationRejected: `<html><body>
<p>Hi {{.StudentName}},</p>
<p>Unfortunately <b>{{.CompanyName}}</b> did not move forward with your application for <b>{{.OpportunityTitle}}</b>.</p>
<p>Keep browsing, new opportunities are posted regularly.</p>
</body></html>`,
}

// TemplateManager is a concurrency-safe TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// notification templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range defaultTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
