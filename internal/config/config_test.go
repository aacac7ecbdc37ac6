package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Clean.Preset != PresetSmart {
		t.Errorf("Clean.Preset = %q, want %q", cfg.Clean.Preset, PresetSmart)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatJSON)
	}
	if cfg.Output.Style != "novel" {
		t.Errorf("Output.Style = %q, want novel", cfg.Output.Style)
	}
	if !cfg.Backup.Enabled {
		t.Error("Backup.Enabled = false, want true")
	}
	if cfg.Clean.Options.StripMarkdown || cfg.Clean.Options.StripPunctuation {
		t.Error("smart defaults must not strip markdown or punctuation")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "empty enums valid", mutate: func(c *Config) {
			c.Clean.Preset = ""
			c.Output.Format = ""
		}},
		{name: "custom preset valid", mutate: func(c *Config) { c.Clean.Preset = PresetCustom }},
		{name: "bad preset", mutate: func(c *Config) { c.Clean.Preset = "aggressive" }, wantErr: ErrInvalidPreset},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: ErrInvalidFormat},
		{name: "style with path", mutate: func(c *Config) { c.Output.Style = "../x" }, wantErr: ErrInvalidStyle},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
clean:
  preset: custom
  options:
    stripHtml: true
    stripEmail: true
parse:
  fallbackTitle: "无题"
output:
  format: yaml
  style: plain
backup:
  enabled: false
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Clean.Preset != PresetCustom {
			t.Errorf("Clean.Preset = %q, want custom", cfg.Clean.Preset)
		}
		if !cfg.Clean.Options.StripEmail {
			t.Error("Options.StripEmail = false, want true")
		}
		if cfg.Parse.FallbackTitle != "无题" {
			t.Errorf("Parse.FallbackTitle = %q", cfg.Parse.FallbackTitle)
		}
		if cfg.Output.Format != FormatYAML || cfg.Output.Style != "plain" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Backup.Enabled {
			t.Error("Backup.Enabled = true, want false")
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "output:\n  format: text\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Format != FormatText {
			t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
		}
		if cfg.Clean.Preset != PresetSmart {
			t.Errorf("Clean.Preset = %q, want smart default preserved", cfg.Clean.Preset)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "clean:\n  presett: smart\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid enum rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "clean:\n  preset: nuke\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidPreset) {
			t.Fatalf("LoadConfig() error = %v, want ErrInvalidPreset", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Fatalf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		t.Parallel()
		big := make([]byte, MaxConfigSize+1)
		for i := range big {
			big[i] = '#'
		}
		path := filepath.Join(t.TempDir(), "big.yaml")
		if err := os.WriteFile(path, big, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigTooLarge) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigTooLarge", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "novelpub.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
