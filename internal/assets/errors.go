package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the asset name is empty or contains
	// path separators, dots, or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidStyleDir indicates the custom style directory is missing
	// or unreadable.
	ErrInvalidStyleDir = errors.New("invalid style directory")

	// ErrPathTraversal indicates a resolved path escaped the style
	// directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAssetRead indicates a stylesheet exists but could not be read.
	ErrAssetRead = errors.New("failed to read asset")
)
