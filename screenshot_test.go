package pong

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"game-over", "game-over"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotRecordsState(t *testing.T) {
	g := newTestGame()
	g.Screenshot("a")
	press(t, g, ebiten.KeyEnter)
	g.Screenshot("b")
	press(t, g, ebiten.KeyQ)
	g.Screenshot("c")

	want := []shot{
		{"a", StateSplash},
		{"b", StateRunning},
		{"c", StateGameOver},
	}
	if len(g.screenshotQueue) != len(want) {
		t.Fatalf("queue = %+v", g.screenshotQueue)
	}
	for i, w := range want {
		if g.screenshotQueue[i] != w {
			t.Errorf("shot %d = %+v, want %+v", i, g.screenshotQueue[i], w)
		}
	}
}

func TestScreenshotKey(t *testing.T) {
	g := newTestGame()
	press(t, g, ebiten.KeyF12)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != (shot{"manual", StateSplash}) {
		t.Errorf("queue = %+v", g.screenshotQueue)
	}
	if g.State() != StateSplash {
		t.Errorf("F12 changed state to %v", g.State())
	}
}

func TestShotName(t *testing.T) {
	tests := []struct {
		i    int
		s    shot
		want string
	}{
		{0, shot{"manual", StateRunning}, "20260101_120000_00_running_manual.png"},
		{3, shot{"end of rally", StateGameOver}, "20260101_120000_03_game-over_end_of_rally.png"},
		{12, shot{"", StateSplash}, "20260101_120000_12_splash_unlabeled.png"},
	}
	for _, tt := range tests {
		if got := shotName("20260101_120000", tt.i, tt.s); got != tt.want {
			t.Errorf("shotName(%d, %+v) = %q, want %q", tt.i, tt.s, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(1, 1, color.RGBA{0x80, 0, 0, 0x80})
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
	r, _, _, a := decoded.At(1, 1).RGBA()
	if a>>8 != 0x80 || r>>8 != 0x80 {
		t.Errorf("pixel = r %#x a %#x, want premultiplied 0x80/0x80", r>>8, a>>8)
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestScreenshotDirOption(t *testing.T) {
	g := NewGame(Options{Rand: testRand(), ScreenshotDir: "out/shots"})
	if g.ScreenshotDir != "out/shots" {
		t.Errorf("ScreenshotDir = %q", g.ScreenshotDir)
	}
}
