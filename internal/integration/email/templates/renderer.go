// Package templates renders notification emails from embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer renders the HTML and plain text variants of each email.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{html: htmlTmpl, text: textTmpl}, nil
}

// Render renders both variants of the named template. A missing text variant
// yields an empty text body.
func (r *Renderer) Render(name string, data any) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}

	if r.text.Lookup(name+".txt") == nil {
		return htmlBuf.String(), "", nil
	}

	var textBuf bytes.Buffer
	if err := r.text.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// GoalCompletedData fills goal_completed templates.
type GoalCompletedData struct {
	UserName string
	GoalName string
	Target   string
	Saved    string
}

// LimitExceededData fills limit_exceeded templates.
type LimitExceededData struct {
	UserName string
	Month    string
	Limit    string
	Total    string
	Over     string
}
