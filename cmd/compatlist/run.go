package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-compatlist"
	"github.com/alnah/go-compatlist/internal/config"
	"github.com/alnah/go-compatlist/internal/fileutil"
	"github.com/alnah/go-compatlist/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input file specified")
	ErrTooManyInputs  = errors.New("expected a single input file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

// run converts the single input file named in args.
func run(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	inputPath, err := resolveInputPath(args)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg, cfg)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	conv, err := compatlist.NewConverter(buildOptions(cfg, timeout)...)
	if err != nil {
		return err
	}
	defer conv.Close()

	start := env.Now()
	res, err := conv.Convert(ctx, compatlist.Input{
		Source:    src,
		SourceDir: filepath.Dir(inputPath),
		PDF:       flags.pdf != "",
	})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := writeHTML(flags, res.HTML, env); err != nil {
		return err
	}

	if flags.pdf != "" {
		if err := fileutil.WriteFile(flags.pdf, res.PDF); err != nil {
			return fmt.Errorf("%w: %w", ErrWritePDF, err)
		}
		printStatus(flags, env, "Created %s\n", flags.pdf)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%s: %d entries, %d columns (%v)\n",
			inputPath, res.Table.Len(), len(res.Table.Columns), env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// resolveInputPath returns the single positional argument.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyInputs, len(args))
	}
}

// loadConfig loads the config named by the flag, else by the environment,
// else returns defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.heading != "" {
		cfg.Document.Heading = flags.document.heading
	}
	if flags.document.description != "" {
		cfg.Document.Description = flags.document.description
	}

	if flags.table.index {
		cfg.Index.Enabled = true
	}
	if flags.table.markdown {
		cfg.Cells.Markdown = true
	}
	if flags.table.placeholder != "" {
		cfg.Cells.Placeholder = flags.table.placeholder
	}
	if flags.table.imgWidth != 0 {
		cfg.Images.Width = flags.table.imgWidth
	}
	if flags.table.imgHeight != 0 {
		cfg.Images.Height = flags.table.imgHeight
	}

	if flags.page.size != "" {
		cfg.PDF.PageSize = strings.ToLower(flags.page.size)
	}
	if flags.page.orientation != "" {
		cfg.PDF.Orientation = strings.ToLower(flags.page.orientation)
	}
	if flags.page.margin != 0 {
		cfg.PDF.Margin = flags.page.margin
	}

	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Style = ""
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// resolveTimeout picks the PDF timeout: flag > env > config > default.
func resolveTimeout(flagTimeout string, envCfg *envConfig, cfg *config.Config) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagTimeout)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, d)
		}
		return d, nil
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}
	return cfg.PDF.TimeoutDuration(compatlist.DefaultTimeout), nil
}

// buildPageSettings fills unset page values with defaults.
func buildPageSettings(cfg *config.Config) *compatlist.PageSettings {
	page := compatlist.DefaultPageSettings()
	if cfg.PDF.PageSize != "" {
		page.Size = cfg.PDF.PageSize
	}
	if cfg.PDF.Orientation != "" {
		page.Orientation = cfg.PDF.Orientation
	}
	if cfg.PDF.Margin != 0 {
		page.Margin = cfg.PDF.Margin
	}
	return page
}

// buildOptions translates the merged config into converter options.
func buildOptions(cfg *config.Config, timeout time.Duration) []compatlist.Option {
	return []compatlist.Option{
		compatlist.WithRenderOptions(compatlist.RenderOptions{
			PageTitle:   cfg.Document.Title,
			Heading:     cfg.Document.Heading,
			Description: cfg.Document.Description,
			Placeholder: cfg.Cells.Placeholder,
			Index:       cfg.Index.Enabled,
		}),
		compatlist.WithMarkdownCells(cfg.Cells.Markdown),
		compatlist.WithImageSize(cfg.Images.Width, cfg.Images.Height),
		compatlist.WithAssetPath(cfg.Assets.BasePath),
		compatlist.WithStyle(cfg.Style),
		compatlist.WithPageSettings(buildPageSettings(cfg)),
		compatlist.WithTimeout(timeout),
	}
}

// writeHTML writes the page to --output, or to stdout.
func writeHTML(flags *cliFlags, html []byte, env *Environment) error {
	if flags.output == "" {
		if _, err := env.Stdout.Write(html); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFile(flags.output, html); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	printStatus(flags, env, "Created %s\n", flags.output)
	return nil
}

// printStatus writes a status line to stderr unless --quiet is set.
// Stdout is reserved for the HTML document.
func printStatus(flags *cliFlags, env *Environment, format string, args ...any) {
	if flags.common.quiet {
		return
	}
	fmt.Fprintf(env.Stderr, format, args...)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, compatlist.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, compatlist.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, compatlist.ErrMalformedMarkup):
		return hints.ForMalformedMarkup()
	case errors.Is(err, ErrReadInput) && errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	case errors.Is(err, ErrWriteOutput), errors.Is(err, ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, compatlist.ErrStyleNotFound):
		return hints.ForStyleNotFound(compatlist.StyleNames())
	default:
		return ""
	}
}
