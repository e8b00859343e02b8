package compatlist

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// HTMLWriter serializes a Document through an html/template.
type HTMLWriter struct {
	tmpl *template.Template
}

// NewHTMLWriter parses tmplContent as the page template.
// The template receives a *Document.
func NewHTMLWriter(tmplContent string) (*HTMLWriter, error) {
	tmpl, err := template.New("table").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing table template: %w", err)
	}
	return &HTMLWriter{tmpl: tmpl}, nil
}

// Write renders doc to w.
func (h *HTMLWriter) Write(w io.Writer, doc *Document) error {
	if err := h.tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return nil
}

// Render renders doc to a string.
func (h *HTMLWriter) Render(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := h.Write(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
