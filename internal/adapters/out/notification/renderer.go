// Package notification renders the customer emails and sends them through Amazon SES.
package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"logistics/internal/core/domain/model/notification"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer resolves a template name to its HTML body.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("emails").Option("missingkey=zero").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the template named n.Template with n.Params. Values are HTML-escaped.
func (r *Renderer) Render(n notification.Notification) (string, error) {
	t := r.templates.Lookup(n.Template + ".html")
	if t == nil {
		return "", fmt.Errorf("unknown email template %q", n.Template)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, n.Params); err != nil {
		return "", fmt.Errorf("render %s: %w", n.Template, err)
	}
	return buf.String(), nil
}
