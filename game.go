package pong

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Fallback entity sizes used when a Game is built without image assets.
var (
	defaultBallSize   = Vec2{12, 12}
	defaultSliderSize = Vec2{10, 70}
)

// Score pop animation played when a point is scored.
const (
	scorePopScale    = 1.6
	scorePopDuration = 0.35
)

var scoreFlashColor = Color{R: 1, G: 0.9, B: 0.4, A: 1}

// Options configures a Game. The zero value is a headless game with a
// randomly seeded generator, no assets and no sound.
type Options struct {
	// Assets supplies images and the score font. When nil the game still
	// simulates but Draw only clears the screen.
	Assets *Assets

	// BallSize and SliderSize override the entity sizes. When zero they are
	// taken from the asset images, or from built-in defaults.
	BallSize   Vec2
	SliderSize Vec2

	// Rand drives the ball's launch direction and paddle deflection angles.
	Rand *rand.Rand

	Sounds        *SoundPlayer
	Debug         bool
	ShowFPS       bool
	ScreenshotDir string
}

// Game owns all state of one Pong session and implements ebiten.Game.
type Game struct {
	state   GameState
	ball    *Ball
	sliders [2]*Slider
	scores  Scoreboard
	tick    uint64

	ballSize   Vec2
	sliderSize Vec2
	rng        *rand.Rand

	assets *Assets
	sounds *SoundPlayer
	store  EventSink
	debug  bool

	// Score text animation.
	scoreScale float64
	scoreColor Color
	tweens     []*TweenGroup

	updateFunc func() error

	// Input buffers reused across ticks.
	keyBuf      []ebiten.Key
	pressedBuf  []ebiten.Key
	injectQueue []Input
	testRunner  *TestRunner

	fps *fpsOverlay

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []shot
}

// NewGame creates a game on the splash screen with fresh entities and a
// zeroed scoreboard.
func NewGame(opts Options) *Game {
	g := &Game{
		state:         StateSplash,
		rng:           opts.Rand,
		assets:        opts.Assets,
		sounds:        opts.Sounds,
		debug:         opts.Debug,
		ballSize:      opts.BallSize,
		sliderSize:    opts.SliderSize,
		scoreScale:    1,
		scoreColor:    ColorWhite,
		ScreenshotDir: opts.ScreenshotDir,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = "screenshots"
	}
	if opts.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	if g.ballSize == (Vec2{}) {
		g.ballSize = defaultBallSize
		if g.assets != nil && g.assets.Ball != nil {
			g.ballSize = imageSize(g.assets.Ball)
		}
	}
	if g.sliderSize == (Vec2{}) {
		g.sliderSize = defaultSliderSize
		if g.assets != nil && g.assets.Slider != nil {
			g.sliderSize = imageSize(g.assets.Slider)
		}
	}
	g.Reset()
	return g
}

// State returns the active screen.
func (g *Game) State() GameState { return g.state }

// Scores returns a copy of the scoreboard.
func (g *Game) Scores() Scoreboard { return g.scores }

// Ball returns the ball currently in play. It is replaced on every reset.
func (g *Game) Ball() *Ball { return g.ball }

// Sliders returns the left and right paddles. They are replaced on every
// reset.
func (g *Game) Sliders() [2]*Slider { return g.sliders }

// Tick returns the number of ticks stepped so far.
func (g *Game) Tick() uint64 { return g.tick }

// SetEventSink sets the optional event consumer.
func (g *Game) SetEventSink(store EventSink) {
	g.store = store
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error stops the game loop.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFunc = fn
}

// SetDebugMode enables or disables debug logging and invariant checks.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// SoftReset replaces the ball and both paddles. Scores are untouched.
func (g *Game) SoftReset() {
	center := Vec2{WindowWidth / 2, WindowHeight / 2}
	g.ball = NewBall(center, g.ballSize, g.rng)
	g.sliders[0] = NewSlider(Vec2{sliderInset, WindowHeight / 2}, g.sliderSize, DefaultControls)
	g.sliders[1] = NewSlider(Vec2{WindowWidth - sliderInset, WindowHeight / 2}, g.sliderSize, DefaultControls)
}

// Reset performs a soft reset and zeroes the scoreboard.
func (g *Game) Reset() {
	g.SoftReset()
	g.scores.Reset()
}

// Score awards a point to side after a soft reset. It is called by the ball
// when it leaves the court.
func (g *Game) Score(side Side) {
	g.SoftReset()
	g.scores.Add(side)
	g.debugf("point %s, score %s", side, g.scores)
	g.emit(EventPointScored, side)
	g.sounds.PlayScore()

	g.scoreColor = scoreFlashColor
	g.tweens = append(g.tweens,
		TweenValue(&g.scoreScale, scorePopScale, 1, scorePopDuration, ease.OutCubic),
		TweenColor(&g.scoreColor, ColorWhite, scorePopDuration, ease.Linear),
	)
}

// Update implements ebiten.Game. It advances the test runner, reads one tick
// of input and steps the simulation.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if err := g.Step(g.pollInput()); err != nil {
		return err
	}
	g.fps.update(1.0 / float64(ebiten.TPS()))
	if g.updateFunc != nil {
		return g.updateFunc()
	}
	return nil
}

// Step advances the game by one tick using in. Key-down events are handled in
// order before the rally is simulated. Escape returns ebiten.Termination.
func (g *Game) Step(in Input) error {
	g.tick++
	for _, k := range in.Pressed {
		if err := g.handleKey(k); err != nil {
			return err
		}
	}

	if g.state == StateRunning {
		held := in.Held
		if held == nil {
			held = KeySet{}
		}
		g.updateRally(held)
	}

	g.updateTweens(1.0 / TicksPerSecond)
	return nil
}

func (g *Game) handleKey(k ebiten.Key) error {
	switch {
	case k == terminateKey:
		g.debugf("terminate requested")
		return ebiten.Termination
	case k == screenshotKey:
		g.Screenshot("manual")
	case isConfirmKey(k):
		switch g.state {
		case StateSplash:
			g.Reset()
			g.setState(StateRunning)
		case StateGameOver:
			g.setState(StateSplash)
		}
	case k == quitRallyKey:
		if g.state == StateRunning {
			g.setState(StateGameOver)
		}
	}
	return nil
}

func (g *Game) setState(s GameState) {
	if s == g.state {
		return
	}
	g.debugf("state %s -> %s", g.state, s)
	g.state = s
	g.emit(EventStateChange, 0)
}

// updateRally runs one RUNNING tick: ball, paddles, then paddle collision.
func (g *Game) updateRally(keys KeyState) {
	wall := g.ball.bounced()
	g.ball.Update(g)
	if wall {
		g.emit(EventWallBounce, 0)
		g.sounds.PlayBounce()
	}

	for _, s := range g.sliders {
		s.Update(keys)
	}
	g.debugCheckSliders()

	b := g.ball.Bounds()
	for i, s := range g.sliders {
		if b.Intersects(s.Bounds()) {
			angle := g.rng.Float64() * 90
			g.ball.Reflect(angle)
			g.debugf("paddle %s hit, reflect %.1f", Side(i), angle)
			g.emit(EventPaddleHit, Side(i))
			g.sounds.PlayPaddle()
			break
		}
	}
}

func (g *Game) updateTweens(dt float32) {
	live := g.tweens[:0]
	for _, tw := range g.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	clear(g.tweens[len(live):])
	g.tweens = live
}

// Layout implements ebiten.Game. The logical screen is always the fixed
// window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
