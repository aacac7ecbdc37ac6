package main

// Notes:
// - readInput: we test stdin selection, extension validation, and missing files.
// - discoverFiles: we test single file, directory walk, and empty directories.
// - resolveOutputPath: we test in-place default, explicit file, and mirrored trees.
// - validateWorkers: we test bounds including the pool maximum.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	novelpub "github.com/CunxiangYin/novel-publication"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// writeTestFile creates a file with content under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestReadInput - Input source selection
// ---------------------------------------------------------------------------

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("reads stdin for dash", func(t *testing.T) {
		t.Parallel()
		got, err := readInput("-", strings.NewReader("# 标题\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "# 标题\n" {
			t.Errorf("got %q, want %q", got, "# 标题\n")
		}
	})

	t.Run("reads markdown file", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, t.TempDir(), "novel.md", "content")
		got, err := readInput(path, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "content" {
			t.Errorf("got %q, want %q", got, "content")
		}
	})

	t.Run("rejects wrong extension", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, t.TempDir(), "novel.txt", "content")
		_, err := readInput(path, nil)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("expected ErrInvalidExtension, got %v", err)
		}
	})

	t.Run("missing file maps to ErrReadInput", func(t *testing.T) {
		t.Parallel()
		_, err := readInput(filepath.Join(t.TempDir(), "absent.md"), nil)
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("expected ErrReadInput, got %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Markdown file discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("single file", func(t *testing.T) {
		t.Parallel()
		path := writeTestFile(t, t.TempDir(), "one.md", "a")
		files, err := discoverFiles(path, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 {
			t.Fatalf("got %d files, want 1", len(files))
		}
		if files[0].OutputPath != path {
			t.Errorf("output = %q, want in-place %q", files[0].OutputPath, path)
		}
	})

	t.Run("walks nested directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeTestFile(t, dir, "a.md", "a")
		writeTestFile(t, dir, "sub/b.markdown", "b")
		writeTestFile(t, dir, "sub/skip.txt", "skip")

		files, err := discoverFiles(dir, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("got %d files, want 2", len(files))
		}
	})

	t.Run("mirrors tree under output dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeTestFile(t, dir, "sub/b.md", "b")
		out := t.TempDir()

		files, err := discoverFiles(dir, out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(out, "sub", "b.md")
		if files[0].OutputPath != want {
			t.Errorf("output = %q, want %q", files[0].OutputPath, want)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		_, err := discoverFiles(t.TempDir(), "")
		if !errors.Is(err, ErrNoMarkdownFiles) {
			t.Errorf("expected ErrNoMarkdownFiles, got %v", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()
		_, err := discoverFiles(filepath.Join(t.TempDir(), "absent"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path resolution
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{"empty output is in-place", "a/b.md", "", "", "a/b.md"},
		{"explicit markdown file", "a/b.md", "out/c.md", "", "out/c.md"},
		{"directory output", "a/b.md", "out", "", filepath.Join("out", "b.md")},
		{"relative tree preserved", "root/sub/b.md", "out", "root", filepath.Join("out", "sub", "b.md")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{"zero means auto", 0, false},
		{"one", 1, false},
		{"maximum", novelpub.MaxWorkers, false},
		{"negative", -1, true},
		{"over maximum", novelpub.MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateWorkers(tt.workers)
			if tt.wantErr && !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("expected ErrInvalidWorkerCount, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
