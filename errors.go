package compatlist

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrMalformedMarkup = errors.New("malformed markup")
	ErrFrontMatter     = errors.New("invalid front matter")
	ErrHTMLRender      = errors.New("HTML rendering failed")
	ErrCellRender      = errors.New("cell rendering failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// FormatError reports a line that violates the markup grammar.
// It matches ErrMalformedMarkup with errors.Is.
type FormatError struct {
	Line   int    // 1-based line number
	Text   string // offending line, without its trailing newline
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedMarkup
}
