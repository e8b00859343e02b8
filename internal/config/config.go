package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-compatlist/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxPlaceholderLength = 100
	MaxPathLength        = 4096
	MaxImageSize         = 1024 // pixels
	MinMargin            = 0.25 // inches
	MaxMargin            = 3.0  // inches
	MaxTimeout           = 10 * time.Minute
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-compatlist"

// Config holds all configuration for table generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Index    IndexConfig    `yaml:"index"`
	Cells    CellsConfig    `yaml:"cells"`
	Images   ImagesConfig   `yaml:"images"`
	Style    string         `yaml:"style"` // style name or CSS file path (empty = no CSS)
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// DocumentConfig sets the page text around the table.
type DocumentConfig struct {
	Title       string `yaml:"title"`   // <title>, default "Compatibility List"
	Heading     string `yaml:"heading"` // heading above the table
	Description string `yaml:"description"`
}

// IndexConfig controls the quick-jump index of titles.
type IndexConfig struct {
	Enabled bool `yaml:"enabled"`
}

// CellsConfig controls cell rendering.
type CellsConfig struct {
	Markdown    bool   `yaml:"markdown"`    // render cell text as Markdown
	Placeholder string `yaml:"placeholder"` // HTML for missing cells (default "&nbsp;")
}

// ImagesConfig sets the thumbnail size for !img directives.
type ImagesConfig struct {
	Width  int `yaml:"width"`  // default 64
	Height int `yaml:"height"` // default 48
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// PDFConfig defines PDF export settings.
type PDFConfig struct {
	PageSize    string  `yaml:"pageSize"`    // letter, a4, legal
	Orientation string  `yaml:"orientation"` // portrait, landscape
	Margin      float64 `yaml:"margin"`      // inches
	Timeout     string  `yaml:"timeout"`     // Go duration, e.g. "30s"
}

// Validate implements validation.Validatable.
func (d DocumentConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&d.Heading, validation.Length(0, MaxTitleLength)),
		validation.Field(&d.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// Validate implements validation.Validatable.
func (c CellsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Placeholder, validation.Length(0, MaxPlaceholderLength)),
	)
}

// Validate implements validation.Validatable.
func (i ImagesConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Width, validation.Min(0), validation.Max(MaxImageSize)),
		validation.Field(&i.Height, validation.Min(0), validation.Max(MaxImageSize)),
	)
}

// Validate implements validation.Validatable.
func (a AssetsConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.BasePath, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (p PDFConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PageSize, validation.In("letter", "a4", "legal")),
		validation.Field(&p.Orientation, validation.In("portrait", "landscape")),
		validation.Field(&p.Margin, validation.Min(MinMargin), validation.Max(MaxMargin)),
		validation.Field(&p.Timeout, validation.By(validateTimeout)),
	)
}

func validateTimeout(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_timeout_format", "must be a duration such as 30s or 2m")
	}
	if d <= 0 || d > MaxTimeout {
		return validation.NewError("validation_timeout_range", fmt.Sprintf("must be between 0 and %s", MaxTimeout))
	}
	return nil
}

// Validate checks every section. Called by LoadConfig, and available for
// callers that build a Config by hand.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Document),
		validation.Field(&c.Cells),
		validation.Field(&c.Images),
		validation.Field(&c.Style, validation.Length(0, MaxPathLength)),
		validation.Field(&c.Assets),
		validation.Field(&c.PDF),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DefaultConfig returns a configuration reproducing the plain table output.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; otherwise it is a
// name searched as {name}.yaml/.yml in the current directory and then in
// the user config directory. Returns ErrConfigNotFound if nothing matches.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize lower-cases enumerated values.
func (c *Config) normalize() {
	c.PDF.PageSize = strings.ToLower(strings.TrimSpace(c.PDF.PageSize))
	c.PDF.Orientation = strings.ToLower(strings.TrimSpace(c.PDF.Orientation))
}

// TimeoutDuration returns the PDF timeout, or fallback when unset or invalid.
func (p PDFConfig) TimeoutDuration(fallback time.Duration) time.Duration {
	if p.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches ./{name}.yaml, ./{name}.yml, then the same
// names under the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
