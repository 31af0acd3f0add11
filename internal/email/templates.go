package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type assignmentCreatedEmailData struct {
	baseEmailData
	ExecutiveName string
	LeadName      string
	Priority      string
	DueDate       string
}

type dueReminderEmailData struct {
	baseEmailData
	ExecutiveName string
	LeadName      string
	Priority      string
	DueDate       string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return "not set"
	}
	return due.Format("January 2, 2006")
}
