package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()
		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil loader")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidStyleDir) {
			t.Fatalf("error = %v, want ErrInvalidStyleDir", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrInvalidStyleDir) {
			t.Fatalf("error = %v, want ErrInvalidStyleDir", err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "file.css")
		if err := os.WriteFile(path, []byte("body{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewFilesystemLoader(path)
		if !errors.Is(err, ErrInvalidStyleDir) {
			t.Fatalf("error = %v, want ErrInvalidStyleDir", err)
		}
	})
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	css := "body { color: #222; }"
	if err := os.WriteFile(filepath.Join(dir, "custom.css"), []byte(css), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		styleName string
		want      string
		wantErr   error
	}{
		{name: "existing style", styleName: "custom", want: css},
		{name: "unknown style", styleName: "missing", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "traversal", styleName: "../escape", wantErr: ErrInvalidAssetName},
		{name: "dotted name", styleName: "a.b", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := loader.LoadStyle(tt.styleName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("LoadStyle(%q) = %q, want %q", tt.styleName, got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("stolen"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	link := filepath.Join(dir, "sneaky.css")
	if err := os.Symlink(secret, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := loader.LoadStyle("sneaky"); !errors.Is(err, ErrPathTraversal) {
		t.Fatalf("LoadStyle through symlink error = %v, want ErrPathTraversal", err)
	}
}
