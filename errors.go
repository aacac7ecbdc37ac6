package novelpub

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnknownPreset indicates a preset name outside basic, clean,
	// publish, smart.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownStyle indicates an export stylesheet that exists neither
	// in the custom style directory nor among the embedded styles.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrInvalidStyleDir indicates the exporter's custom style directory
	// is missing or unreadable.
	ErrInvalidStyleDir = errors.New("invalid style directory")

	// ErrNilDocument indicates an export was attempted on a nil document.
	ErrNilDocument = errors.New("document cannot be nil")

	// ErrHTMLRender indicates markdown to HTML rendering failed.
	ErrHTMLRender = errors.New("HTML rendering failed")
)
