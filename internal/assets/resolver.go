package assets

import "errors"

// Resolver combines a custom filesystem loader with the embedded one.
// Custom styles take precedence; unknown names fall back to the
// embedded set so overriding one style keeps the rest available.
type Resolver struct {
	custom   Loader // nil when no custom directory is configured
	embedded Loader
}

// NewResolver creates a Resolver. With an empty styleDir only embedded
// styles are served. A non-empty styleDir must be a valid directory.
func NewResolver(styleDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if styleDir != "" {
		fsLoader, err := NewFilesystemLoader(styleDir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadStyle tries the custom loader first when one is configured.
// Only ErrStyleNotFound triggers the embedded fallback; validation and
// I/O errors surface as-is.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// HasCustom reports whether a custom style directory is configured.
func (r *Resolver) HasCustom() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
