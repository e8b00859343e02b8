package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-compatlist"
	"github.com/alnah/go-compatlist/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", compatlist.ErrBrowserConnect, ExitBrowser},
		{"page create", compatlist.ErrPageCreate, ExitBrowser},
		{"page load", compatlist.ErrPageLoad, ExitBrowser},
		{"pdf generation", compatlist.ErrPDFGeneration, ExitBrowser},
		{"deadline", context.DeadlineExceeded, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("converting to PDF: %w", compatlist.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"write pdf", ErrWritePDF, ExitIO},
		{"wrapped file not exist", fmt.Errorf("%w: %w", ErrReadInput, os.ErrNotExist), ExitIO},

		// Format errors (exit 5)
		{"malformed markup", compatlist.ErrMalformedMarkup, ExitFormat},
		{"format error", &compatlist.FormatError{Line: 3, Text: "[x", Reason: "unterminated"}, ExitFormat},
		{"wrapped format error", fmt.Errorf("list.txt: %w", &compatlist.FormatError{Line: 1}), ExitFormat},
		{"front matter", compatlist.ErrFrontMatter, ExitFormat},

		// Usage/config/validation errors (exit 2)
		{"no input", ErrNoInput, ExitUsage},
		{"too many inputs", ErrTooManyInputs, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid page size", compatlist.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", compatlist.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", compatlist.ErrInvalidMargin, ExitUsage},
		{"style not found", compatlist.ErrStyleNotFound, ExitUsage},
		{"template not found", compatlist.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", compatlist.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"cell render", compatlist.ErrCellRender, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser, ExitFormat}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", c)
		}
		if seen[c] {
			t.Errorf("exit code %d defined twice", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
}
