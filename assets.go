package pong

import (
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Image file names looked up in the asset file system.
const (
	SplashImage  = "splash-screen.png"
	EndImage     = "end-screen.png"
	DividerImage = "divider.png"
	BallImage    = "ball.png"
	SliderImage  = "slider.png"
)

// Assets holds everything loaded once at startup.
type Assets struct {
	Splash  *ebiten.Image
	End     *ebiten.Image
	Divider *ebiten.Image
	Ball    *ebiten.Image
	Slider  *ebiten.Image
	Font    *TTFFont

	// FontFallback is true when the preferred font was missing and the
	// bundled default is in use.
	FontFallback bool
}

// LoadAssets reads the five images from fsys and the score font from
// fontPath. A missing font falls back to the bundled default; any missing or
// undecodable image is an error.
func LoadAssets(fsys fs.FS, fontPath string, fontSize float64) (*Assets, error) {
	a := &Assets{}
	for _, img := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{SplashImage, &a.Splash},
		{EndImage, &a.End},
		{DividerImage, &a.Divider},
		{BallImage, &a.Ball},
		{SliderImage, &a.Slider},
	} {
		loaded, err := loadImage(fsys, img.name)
		if err != nil {
			return nil, err
		}
		*img.dst = loaded
	}

	font, fallback, err := LoadFontFile(fontPath, fontSize)
	if err != nil {
		return nil, err
	}
	a.Font = font
	a.FontFallback = fallback
	return a, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("pong: load image %s: %w", name, err)
	}
	return img, nil
}

// imageSize returns the pixel dimensions of img.
func imageSize(img *ebiten.Image) Vec2 {
	b := img.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}
