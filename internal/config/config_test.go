package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/digitize"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digitize.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
resolution = 8
levels = 4
picks = [0, 3, 1]
language = "ja"
color = "never"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resolution != 8 || cfg.Levels != 4 {
		t.Errorf("Resolution, Levels = %d, %d, want 8, 4", cfg.Resolution, cfg.Levels)
	}
	if len(cfg.Picks) != 3 || cfg.Picks[1] != 3 {
		t.Errorf("Picks = %v", cfg.Picks)
	}
	if cfg.SourceSize != 256 || cfg.Glyph != "の" {
		t.Errorf("defaults not kept: SourceSize=%d Glyph=%q", cfg.SourceSize, cfg.Glyph)
	}
	tag, err := cfg.Tag()
	if err != nil || tag != language.Japanese {
		t.Errorf("Tag() = %v, %v", tag, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, "resolutoin = 8\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"resolution", func(c *Config) { c.Resolution = 12 }, digitize.ErrInvalidResolution},
		{"levels", func(c *Config) { c.Levels = 1 }, digitize.ErrInvalidLevels},
		{"source size", func(c *Config) { c.SourceSize = 100 }, ErrInvalid},
		{"view size", func(c *Config) { c.ViewSize = 0 }, ErrInvalid},
		{"pick", func(c *Config) { c.Picks = []int{0, 16} }, ErrInvalid},
		{"color", func(c *Config) { c.Color = "rainbow" }, ErrInvalid},
		{"language", func(c *Config) { c.Language = "not a tag!" }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
