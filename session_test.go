package digitize

import (
	"errors"
	"image"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

// halves returns a square image whose left half is black and right half white.
func halves(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := size / 2; x < size; x++ {
			img.Pix[img.PixOffset(x, y)] = 255
		}
	}
	return img
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(halves(256), opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t)
	if s.Resolution() != DefaultResolution {
		t.Errorf("Resolution() = %d, want %d", s.Resolution(), DefaultResolution)
	}
	if s.Levels() != DefaultLevels {
		t.Errorf("Levels() = %d, want %d", s.Levels(), DefaultLevels)
	}
	if s.Step() != StepSampling {
		t.Errorf("Step() = %v, want Sampling", s.Step())
	}
	if s.Intensities().Size() != DefaultResolution {
		t.Errorf("Intensities().Size() = %d", s.Intensities().Size())
	}
}

func TestNewSessionInvalid(t *testing.T) {
	if _, err := NewSession(halves(256), WithResolution(5)); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("WithResolution(5) error = %v, want ErrInvalidResolution", err)
	}
	if _, err := NewSession(halves(256), WithLevels(32)); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("WithLevels(32) error = %v, want ErrInvalidLevels", err)
	}
	if _, err := NewSession(halves(100)); !errors.Is(err, ErrSourceSize) {
		t.Errorf("100px source error = %v, want ErrSourceSize", err)
	}
}

func TestSessionWizard(t *testing.T) {
	s := newTestSession(t)
	if s.Back() {
		t.Error("Back() from Sampling moved")
	}
	for i, want := range []Step{StepQuantization, StepCoding, StepResult} {
		if !s.Next() {
			t.Fatalf("Next() #%d did not move", i)
		}
		if s.Step() != want {
			t.Errorf("Step() = %v, want %v", s.Step(), want)
		}
	}
	if s.Next() {
		t.Error("Next() from Result moved")
	}
	if !s.Back() || s.Step() != StepCoding {
		t.Errorf("Back() from Result = %v", s.Step())
	}
}

func TestSessionPickAdvancesCursor(t *testing.T) {
	s := newTestSession(t, WithResolution(2), WithLevels(2))
	s.Next()

	for _, idx := range []int{0, 1, 1, 0} {
		if err := s.PickIndex(idx); err != nil {
			t.Fatalf("PickIndex(%d) error = %v", idx, err)
		}
	}
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("Cursor() = (%d,%d), want wrap to (0,0)", x, y)
	}
	code, err := s.Code()
	if err != nil {
		t.Fatalf("Code() error = %v", err)
	}
	if code != "0110" {
		t.Errorf("Code() = %q, want %q", code, "0110")
	}

	if err := s.PickIndex(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PickIndex(2) error = %v, want ErrOutOfRange", err)
	}
	if err := s.Pick(128); !errors.Is(err, ErrNotInPalette) {
		t.Errorf("Pick(128) error = %v, want ErrNotInPalette", err)
	}
}

func TestSessionEnterQuantizationResetsCursor(t *testing.T) {
	s := newTestSession(t, WithResolution(4), WithLevels(4))
	s.Next()
	_ = s.PickIndex(3)
	_ = s.PickIndex(3)
	s.Next()
	s.Back()
	if x, y := s.Cursor(); x != 0 || y != 0 {
		t.Errorf("Cursor() after re-entering = (%d,%d), want (0,0)", x, y)
	}
}

func TestSessionSetLevelsResnaps(t *testing.T) {
	s := newTestSession(t, WithResolution(2), WithLevels(4))
	orig := s.Palette()

	_ = s.Select(0, 0, 85)
	_ = s.Select(1, 0, 255)

	if err := s.SetLevels(2); err != nil {
		t.Fatalf("SetLevels(2) error = %v", err)
	}
	sel := s.Selection()
	if sel.Value(0, 0) != 0 || sel.Value(1, 0) != 255 {
		t.Errorf("after SetLevels(2) rows = %v, want 85 snapped to 0 and 255 kept", sel.Rows())
	}

	if err := s.SetLevels(4); err != nil {
		t.Fatalf("SetLevels(4) error = %v", err)
	}
	if !s.Palette().Equal(orig) {
		t.Errorf("palette after revert = %v, want %v", s.Palette(), orig)
	}
	if s.Selection().Value(0, 0) != 0 {
		t.Error("snapped selection was restored on revert")
	}

	if err := s.SetLevels(3); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("SetLevels(3) error = %v", err)
	}
	if s.Levels() != 4 {
		t.Errorf("Levels() after failed SetLevels = %d, want 4", s.Levels())
	}
}

func TestSessionSetResolution(t *testing.T) {
	s := newTestSession(t, WithResolution(2), WithLevels(2))
	_ = s.Select(0, 0, 255)

	if err := s.SetResolution(4); err != nil {
		t.Fatalf("SetResolution(4) error = %v", err)
	}
	if s.Intensities().Size() != 4 {
		t.Errorf("Intensities().Size() = %d, want 4", s.Intensities().Size())
	}
	if s.Intensities().Value(0, 0) != 0 || s.Intensities().Value(3, 0) != 255 {
		t.Errorf("intensities = %v", s.Intensities().Rows())
	}
	if s.Selection().Size() != 4 || s.Selection().Value(0, 0) != 255 {
		t.Errorf("selection after resize = %v", s.Selection().Rows())
	}

	if err := s.SetResolution(512); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("SetResolution(512) error = %v", err)
	}
	if s.Resolution() != 4 {
		t.Errorf("Resolution() after failed change = %d, want 4", s.Resolution())
	}
}

func TestSessionAutoQuantize(t *testing.T) {
	s := newTestSession(t, WithResolution(4), WithLevels(2))
	s.AutoQuantize()
	code, err := s.Code()
	if err != nil {
		t.Fatalf("Code() error = %v", err)
	}
	if want := strings.Repeat("0011", 4); code != want {
		t.Errorf("Code() = %q, want %q", code, want)
	}
}

func TestSessionCursorIntensity(t *testing.T) {
	s := newTestSession(t, WithResolution(2), WithLevels(2))
	s.Next()
	if got := s.CursorIntensity(); got != 0 {
		t.Errorf("CursorIntensity() = %v, want 0", got)
	}
	_ = s.PickIndex(0)
	if got := s.CursorIntensity(); got != 255 {
		t.Errorf("CursorIntensity() = %v, want 255", got)
	}
}

func TestSessionResolutionKeepsHiddenCells(t *testing.T) {
	s := newTestSession(t, WithResolution(4), WithLevels(2))
	if err := s.Select(3, 3, 255); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if err := s.SetResolution(2); err != nil {
		t.Fatalf("SetResolution(2) error = %v", err)
	}
	if err := s.Select(3, 3, 255); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select(3,3) at R=2 error = %v, want ErrOutOfRange", err)
	}
	if err := s.SetResolution(4); err != nil {
		t.Fatalf("SetResolution(4) error = %v", err)
	}
	if got := s.Selection().Value(3, 3); got != 255 {
		t.Errorf("cell (3,3) after 4->2->4 = %d, want 255", got)
	}
	code, err := s.Code()
	if err != nil {
		t.Fatalf("Code() error = %v", err)
	}
	if want := "0000000000000001"; code != want {
		t.Errorf("Code() = %q, want %q", code, want)
	}
}

func TestSessionIntensitiesIsCopy(t *testing.T) {
	s := newTestSession(t, WithResolution(2))
	g := s.Intensities()
	g.Set(0, 0, 123)
	if got := s.Intensities().Value(0, 0); got == 123 {
		t.Error("changing the returned grid changed the session")
	}
	if got := s.CursorIntensity(); got != 0 {
		t.Errorf("CursorIntensity() = %v, want 0", got)
	}
}

func TestSessionSetSource(t *testing.T) {
	s := newTestSession(t, WithResolution(4))
	if err := s.SetSource(uniformGray(64, 9)); err != nil {
		t.Fatalf("SetSource() error = %v", err)
	}
	if got := s.Intensities().Value(1, 1); got != 9 {
		t.Errorf("Value(1,1) = %v, want 9", got)
	}

	// 6 is not a multiple of the resolution 4.
	if err := s.SetSource(uniformGray(6, 200)); !errors.Is(err, ErrSourceSize) {
		t.Errorf("SetSource(6px) error = %v, want ErrSourceSize", err)
	}
	if s.Source().Bounds().Dx() != 64 {
		t.Error("failed SetSource replaced the source")
	}
	if got := s.Intensities().Value(3, 3); got != 9 {
		t.Errorf("Value(3,3) after failed SetSource = %v, want 9", got)
	}
}

func TestSessionSummary(t *testing.T) {
	s := newTestSession(t, WithResolution(8), WithLevels(4))

	en := s.Summary(language.English)
	if en[0] != "Resolution: 8 × 8" || en[1] != "Gradation: 4 levels" {
		t.Errorf("Summary(en) = %q", en)
	}
	ja := s.Summary(language.Japanese)
	if ja[0] != "解像度：縦 8 × 横 8" || ja[1] != "階調：4 階調" || ja[2] != "データ：" {
		t.Errorf("Summary(ja) = %q", ja)
	}
}
