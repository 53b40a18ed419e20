package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/digitize"
	"github.com/gogpu/digitize/bitstream"
)

func TestParsePicks(t *testing.T) {
	got, err := parsePicks(" 0, 3,1 ")
	if err != nil {
		t.Fatalf("parsePicks() error = %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 3 || got[2] != 1 {
		t.Errorf("parsePicks() = %v", got)
	}
	if got, _ := parsePicks(""); got != nil {
		t.Errorf("parsePicks(\"\") = %v, want nil", got)
	}
	if _, err := parsePicks("1,x"); err == nil {
		t.Error("parsePicks(\"1,x\") error = nil")
	}
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	if err := os.WriteFile(path, []byte("resolution = 8\nlevels = 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := parseConfig([]string{"-config", path, "-levels", "2"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.Resolution != 8 || cfg.Levels != 2 {
		t.Errorf("Resolution, Levels = %d, %d, want 8, 2", cfg.Resolution, cfg.Levels)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := parseConfig([]string{"-resolution", "6"}, &bytes.Buffer{}); err == nil {
		t.Error("parseConfig(-resolution 6) error = nil")
	}
	if _, err := parseConfig([]string{"-levels", "2", "-picks", "0,2"}, &bytes.Buffer{}); err == nil {
		t.Error("parseConfig(pick out of range) error = nil")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "code.dgz")
	stdout, err := os.Create(filepath.Join(dir, "stdout.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer stdout.Close()

	args := []string{
		"-resolution", "4", "-levels", "2",
		"-size", "64", "-view", "64",
		"-picks", "1,1,0",
		"-out", dir, "-export", exportPath,
		"-color", "never",
	}
	if err := run(args, stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"1-sampling.png", "2-quantization.png", "3-coding.png", "4-result.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("view %s missing: %v", name, err)
		}
	}

	out, err := os.ReadFile(stdout.Name())
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)
	for _, want := range []string{"Result\n", "Resolution: 4 × 4\n", "Gradation: 2 levels\n", "Data:\n", "1100\n0000\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("stdout missing %q:\n%s", want, text)
		}
	}

	f, err := os.Open(exportPath)
	if err != nil {
		t.Fatalf("export missing: %v", err)
	}
	defer f.Close()
	sel, p, err := bitstream.Read(f)
	if err != nil {
		t.Fatalf("bitstream.Read() error = %v", err)
	}
	code, err := digitize.Encode(sel, p)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(code, "1100") || len(code) != 16 {
		t.Errorf("exported code = %q", code)
	}
}
