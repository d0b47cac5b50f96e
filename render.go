package pong

import "github.com/hajimehoshi/ebiten/v2"

// scoreCenter is where the score text is centered.
var scoreCenter = Vec2{WindowWidth / 2, 30}

// Draw implements ebiten.Game. The frame is cleared to black, the active
// screen is drawn, then overlays and queued screenshots are handled.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBlack.RGBA())

	if a := g.assets; a != nil {
		switch g.state {
		case StateSplash:
			screen.DrawImage(a.Splash, nil)
		case StateRunning:
			g.drawRally(screen, a)
		case StateGameOver:
			screen.DrawImage(a.End, nil)
		}
	}

	g.fps.draw(screen)
	g.flushScreenshots(screen)
}

func (g *Game) drawRally(screen *ebiten.Image, a *Assets) {
	drawSprite(screen, a.Ball, g.ball.Bounds())
	for _, s := range g.sliders {
		drawSprite(screen, a.Slider, s.Bounds())
	}

	center := Vec2{WindowWidth / 2, WindowHeight / 2}
	drawSprite(screen, a.Divider, RectCentered(center, imageSize(a.Divider)))

	if a.Font != nil {
		a.Font.DrawCentered(screen, g.scores.String(), scoreCenter, g.scoreScale, g.scoreColor)
	}
}

// drawSprite draws img with its top-left corner at the corner of r, stretched
// to r's size when they differ.
func drawSprite(dst, img *ebiten.Image, r Rect) {
	size := imageSize(img)
	op := &ebiten.DrawImageOptions{}
	if size.X > 0 && size.Y > 0 && (size.X != r.Width || size.Y != r.Height) {
		op.GeoM.Scale(r.Width/size.X, r.Height/size.Y)
	}
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, op)
}
