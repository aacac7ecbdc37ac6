package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves stylesheets from a directory on disk, letting
// users ship their own CSS next to their manuscripts.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at dir. The
// directory must exist and be readable; stylesheets live directly in it
// as <name>.css files.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidStyleDir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleDir, err)
	}

	// Resolve symlinks up front so the containment check below compares
	// real paths.
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidStyleDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidStyleDir, absDir)
	}
	if _, err := os.ReadDir(absDir); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidStyleDir, err)
	}

	return &FilesystemLoader{dir: absDir}, nil
}

// LoadStyle loads <dir>/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.dir, name+".css")
	if err := f.verifyContainment(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// verifyContainment rejects paths that resolve outside the style
// directory, symlink escapes included.
func (f *FilesystemLoader) verifyContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file is fine here; the read fails on its own and the
	// prefix check still runs against the unresolved path.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	if !strings.HasPrefix(absPath, f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes style directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
