package compatlist

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-compatlist/internal/assets"
	"github.com/alnah/go-compatlist/internal/fileutil"
)

// StyleNames lists the styles bundled with the library.
func StyleNames() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}

// newAssetLoader returns the embedded loader, or a resolver that consults
// basePath first when one is given.
func newAssetLoader(basePath string) (assets.AssetLoader, error) {
	if basePath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return resolver, nil
}

// loadStyle resolves a style name or CSS file path to CSS content.
// An empty input means no stylesheet.
func loadStyle(loader assets.AssetLoader, input string) (string, error) {
	if input == "" {
		return "", nil
	}

	if fileutil.IsFilePath(input) || fileutil.IsCSSFile(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrStyleNotFound, input)
			}
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	css, err := loader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	return css, nil
}

// loadTemplate returns the page template content.
func loadTemplate(loader assets.AssetLoader) (string, error) {
	tmpl, err := loader.LoadTemplate(assets.TableTemplateName)
	if err != nil {
		return "", fmt.Errorf("loading table template: %w", convertAssetError(err))
	}
	return tmpl, nil
}

// convertAssetError maps internal asset errors to public sentinels while
// keeping the original in the chain.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w: %w", ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return fmt.Errorf("%w: %w", ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrInvalidAssetName):
		return fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
