package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-compatlist"
	"github.com/alnah/go-compatlist/internal/config"
)

// Exit codes for the compatlist CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitFormat  = 5 // Malformed markup or front matter
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, compatlist.ErrBrowserConnect) ||
		errors.Is(err, compatlist.ErrPageCreate) ||
		errors.Is(err, compatlist.ErrPageLoad) ||
		errors.Is(err, compatlist.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Input format errors (exit 5)
	if errors.Is(err, compatlist.ErrMalformedMarkup) ||
		errors.Is(err, compatlist.ErrFrontMatter) {
		return ExitFormat
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, compatlist.ErrInvalidPageSize) ||
		errors.Is(err, compatlist.ErrInvalidOrientation) ||
		errors.Is(err, compatlist.ErrInvalidMargin) ||
		errors.Is(err, compatlist.ErrStyleNotFound) ||
		errors.Is(err, compatlist.ErrTemplateNotFound) ||
		errors.Is(err, compatlist.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
