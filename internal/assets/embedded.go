// Package assets ships the stylesheets bundled into the binary for HTML
// export. Styles are addressed by bare name; the loader abstraction lets
// tests substitute their own.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

// DefaultStyle is the stylesheet used when the caller names none.
const DefaultStyle = "novel"

// Loader loads a CSS stylesheet by name.
type Loader interface {
	// LoadStyle loads a stylesheet by bare name, without the .css
	// extension. Returns ErrStyleNotFound for unknown names and
	// ErrInvalidAssetName for unsafe ones.
	LoadStyle(name string) (string, error)
}

// EmbeddedLoader serves the stylesheets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads an embedded stylesheet by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// StyleNames lists the embedded stylesheet names, sorted.
func StyleNames() []string {
	entries, err := fs.Glob(styles, "styles/*.css")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(entry, "styles/"), ".css")
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateName rejects names that could escape the styles directory or
// smuggle an extension.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
