package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

// Template names known to the worker.
const (
	Welcome = "welcome"
)

// SubjectFor returns the email subject for a known template name.
func SubjectFor(name string) string {
	switch name {
	case Welcome:
		return "Welcome to bookmarkd"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named embedded template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	t, err := htmpl.ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
