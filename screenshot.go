package pong

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a pending capture. The state is recorded when the capture is
// requested so the file name matches the screen the player asked for.
type shot struct {
	label string
	state GameState
}

// Screenshot queues a labeled capture of the next drawn frame. Files are
// written to ScreenshotDir as <time>_<n>_<state>_<label>.png.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, shot{label: label, state: g.state})
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Draw; failures are reported and the queue is dropped.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		g.warnf("screenshot: %v", err)
		return
	}

	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for i, s := range g.screenshotQueue {
		path := filepath.Join(g.ScreenshotDir, shotName(stamp, i, s))
		if err := writePNG(path, frame); err != nil {
			g.warnf("screenshot: %v", err)
			continue
		}
		g.debugf("screenshot %s", path)
	}
}

// captureFrame copies the screen into an RGBA image. Ebitengine pixels are
// premultiplied, which is the layout image.RGBA expects, so the PNG encoder
// handles the alpha conversion.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)
	return frame
}

func shotName(stamp string, i int, s shot) string {
	return fmt.Sprintf("%s_%02d_%s_%s.png", stamp, i, s.state, sanitizeLabel(s.label))
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces anything
// else with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
