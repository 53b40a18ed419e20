// Package config holds the settings of the digitize command, read from an
// optional TOML file and overridden by flags.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gogpu/digitize"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete command configuration.
type Config struct {
	// SourceSize is the side of the rendered or loaded source image.
	SourceSize int `toml:"source_size"`
	// ViewSize is the side of every grid panel in the exported views.
	ViewSize   int `toml:"view_size"`
	Resolution int `toml:"resolution"`
	Levels     int `toml:"levels"`

	// Source is an optional picture used instead of the test figure.
	Source string `toml:"source"`
	// Font is an optional TrueType/OpenType file used to draw Glyph.
	Font  string `toml:"font"`
	Glyph string `toml:"glyph"`

	// Picks are palette indices applied in cursor order.
	Picks []int `toml:"picks"`
	// Auto quantizes every cell to its nearest level before Picks apply.
	Auto bool `toml:"auto"`

	OutputDir string `toml:"output_dir"`
	Export    string `toml:"export"`
	Language  string `toml:"language"`
	Color     string `toml:"color"`
	Verbose   bool   `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SourceSize: 256,
		ViewSize:   512,
		Resolution: digitize.DefaultResolution,
		Levels:     digitize.DefaultLevels,
		Glyph:      "の",
		OutputDir:  ".",
		Language:   "en",
		Color:      ColorAuto,
	}
}

// Load decodes the TOML file at path on top of Default.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	return cfg, nil
}

// Validate checks value ranges and cross-field constraints.
func (c Config) Validate() error {
	if err := digitize.ValidateResolution(c.Resolution); err != nil {
		return err
	}
	if err := digitize.ValidateLevels(c.Levels); err != nil {
		return err
	}
	if c.SourceSize <= 0 || c.SourceSize%c.Resolution != 0 {
		return fmt.Errorf("%w: source_size %d must be a positive multiple of resolution %d",
			ErrInvalid, c.SourceSize, c.Resolution)
	}
	if c.ViewSize <= 0 || c.ViewSize%c.Resolution != 0 {
		return fmt.Errorf("%w: view_size %d must be a positive multiple of resolution %d",
			ErrInvalid, c.ViewSize, c.Resolution)
	}
	for i, p := range c.Picks {
		if p < 0 || p >= c.Levels {
			return fmt.Errorf("%w: pick %d is index %d, want [0, %d)", ErrInvalid, i, p, c.Levels)
		}
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if _, err := c.Tag(); err != nil {
		return err
	}
	return nil
}

// Tag parses Language as a BCP 47 tag.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %v", ErrInvalid, c.Language, err)
	}
	return tag, nil
}
