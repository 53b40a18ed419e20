// Command digitize walks an image through sampling, quantization and
// coding, writing one PNG view per step and printing the resulting code.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/digitize"
	"github.com/gogpu/digitize/bitstream"
	"github.com/gogpu/digitize/canvas"
	"github.com/gogpu/digitize/internal/config"
	"github.com/gogpu/digitize/internal/term"
	"github.com/gogpu/digitize/source"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("digitize: %v", err)
	}
}

func run(args []string, stdout *os.File, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		digitize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	tag, _ := cfg.Tag()

	src, err := loadSource(cfg)
	if err != nil {
		return err
	}
	s, err := digitize.NewSession(src,
		digitize.WithResolution(cfg.Resolution),
		digitize.WithLevels(cfg.Levels),
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	for i, step := range digitize.Steps {
		if step == digitize.StepQuantization {
			if err := quantize(s, cfg); err != nil {
				return err
			}
		}
		img, err := canvas.RenderStep(s, cfg.ViewSize)
		if err != nil {
			return fmt.Errorf("render %v: %w", step, err)
		}
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%d-%s.png", i+1, strings.ToLower(step.String())))
		if err := canvas.SavePNG(path, img); err != nil {
			return err
		}
		digitize.Logger().Info("digitize: view written", "step", step.String(), "path", path)
		s.Next()
	}

	out := term.NewWriter(stdout, cfg.Color)
	out.Heading(s.Step().Label(tag))
	summary := s.Summary(tag)
	for _, line := range summary[:len(summary)-1] {
		out.Line(line)
	}
	out.Heading(summary[len(summary)-1])
	fields, err := s.Fields()
	if err != nil {
		return err
	}
	out.Fields(fields, s.Resolution())

	if cfg.Export != "" {
		n, err := export(cfg.Export, s)
		if err != nil {
			return err
		}
		out.Line(fmt.Sprintf("%s: %d bits → %d bytes", cfg.Export, len(fields)*s.Palette().Bits(), n))
	}
	return out.Flush()
}

// parseConfig reads the optional TOML file and applies explicitly set flags on top.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("digitize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath    = fs.String("config", "", "TOML configuration file")
		resolution = fs.Int("resolution", def.Resolution, "grid side R (power of two, 2-256)")
		levels     = fs.Int("levels", def.Levels, "gradation levels G (power of two, 2-16)")
		size       = fs.Int("size", def.SourceSize, "source image side in pixels")
		view       = fs.Int("view", def.ViewSize, "side of each grid panel in pixels")
		src        = fs.String("source", "", "picture to digitize instead of the test figure")
		font       = fs.String("font", "", "font file used to draw the figure glyph")
		glyph      = fs.String("glyph", def.Glyph, "figure glyph")
		picks      = fs.String("picks", "", "comma-separated palette indices applied in cursor order")
		auto       = fs.Bool("auto", false, "quantize every cell to its nearest level")
		outDir     = fs.String("out", def.OutputDir, "directory for the step views")
		exportPath = fs.String("export", "", "write the zstd-compressed bitstream to this file")
		lang       = fs.String("lang", def.Language, "language of labels (en, ja)")
		color      = fs.String("color", def.Color, "terminal colors: auto, always, never")
		verbose    = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return cfg, err
		}
	}

	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "resolution":
			cfg.Resolution = *resolution
		case "levels":
			cfg.Levels = *levels
		case "size":
			cfg.SourceSize = *size
		case "view":
			cfg.ViewSize = *view
		case "source":
			cfg.Source = *src
		case "font":
			cfg.Font = *font
		case "glyph":
			cfg.Glyph = *glyph
		case "picks":
			cfg.Picks, perr = parsePicks(*picks)
		case "auto":
			cfg.Auto = *auto
		case "out":
			cfg.OutputDir = *outDir
		case "export":
			cfg.Export = *exportPath
		case "lang":
			cfg.Language = *lang
		case "color":
			cfg.Color = *color
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if perr != nil {
		return cfg, perr
	}
	return cfg, cfg.Validate()
}

func parsePicks(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	picks := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("picks: %q is not an index", p)
		}
		picks = append(picks, n)
	}
	return picks, nil
}

func loadSource(cfg config.Config) (image.Image, error) {
	if cfg.Source != "" {
		return source.Load(cfg.Source, cfg.SourceSize)
	}
	opts := []canvas.FigureOption{canvas.WithGlyph(cfg.Glyph)}
	if cfg.Font != "" {
		fs, err := text.NewFontSourceFromFile(cfg.Font)
		if err != nil {
			return nil, err
		}
		defer func() { _ = fs.Close() }()
		opts = append(opts, canvas.WithFont(fs))
	}
	return canvas.Figure(cfg.SourceSize, opts...)
}

func quantize(s *digitize.Session, cfg config.Config) error {
	if cfg.Auto {
		s.AutoQuantize()
	}
	for _, idx := range cfg.Picks {
		if err := s.PickIndex(idx); err != nil {
			return err
		}
	}
	return nil
}

func export(path string, s *digitize.Session) (int64, error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return 0, err
	}
	n, err := bitstream.Write(f, s.Selection(), s.Palette())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
