package pong

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath is the preferred score font. It is not shipped; when it is
// missing the bundled Go Regular face is used instead.
const DefaultFontPath = "resources/monocraft.otf"

// DefaultFontSize is the score text size in points.
const DefaultFontSize = 32

// TTFFont wraps Ebitengine's text/v2 for TrueType and OpenType rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("pong: parse font data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// LoadDefaultFont returns the bundled Go Regular face.
func LoadDefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// LoadFontFile loads the font at path. If the file does not exist the bundled
// default is returned with fallback set. Any other read or parse failure is
// returned as an error.
func LoadFontFile(path string, size float64) (f *TTFFont, fallback bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f, err = LoadDefaultFont(size)
		return f, true, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("pong: read font %s: %w", path, err)
	}
	f, err = LoadTTFFont(data, size)
	if err != nil {
		return nil, false, fmt.Errorf("pong: load font %s: %w", path, err)
	}
	return f, false, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the point size the face was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// DrawCentered draws s with its center at c, scaled about that center.
func (f *TTFFont) DrawCentered(dst *ebiten.Image, s string, c Vec2, scale float64, clr Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = f.lh
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.ScaleWithColor(clr.RGBA())
	text.Draw(dst, s, f.face, op)
}
