// Pong opens a 500x500 window on the splash screen. Return or Space starts a
// rally, W and S move the paddles, Q ends the rally and Escape quits.
//
// All flags are optional:
//
//	-assets dir       load images from dir instead of the embedded set
//	-font path        preferred score font (falls back to Go Regular)
//	-script file      play back a JSON input script
//	-screenshots dir  where F12 and script screenshots are written
//	-debug            log state changes, points and hits to stderr
//	-fps              show the FPS/TPS overlay
//	-mute             do not open the audio device
package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/ecs"
	"github.com/phanxgames/pong/resources"
)

var (
	assetsDir      = flag.String("assets", "", "directory holding the game images (default: embedded)")
	fontPath       = flag.String("font", pong.DefaultFontPath, "preferred score font")
	scriptPath     = flag.String("script", "", "JSON input script to play back")
	screenshotsDir = flag.String("screenshots", "screenshots", "screenshot output directory")
	debugMode      = flag.Bool("debug", false, "log game events to stderr")
	showFPS        = flag.Bool("fps", false, "show the FPS overlay")
	mute           = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	var fsys fs.FS = resources.FS
	if *assetsDir != "" {
		fsys = os.DirFS(*assetsDir)
	}

	assets, err := pong.LoadAssets(fsys, *fontPath, pong.DefaultFontSize)
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}
	if assets.FontFallback && *debugMode {
		log.Printf("font %s not found, using default", *fontPath)
	}

	var sounds *pong.SoundPlayer
	if !*mute {
		sounds = pong.NewSoundPlayer()
		if err := sounds.Init(); err != nil {
			// Non-fatal, the game runs silently.
			log.Printf("audio disabled: %v", err)
			sounds = nil
		}
		defer sounds.Close()
	}

	game := pong.NewGame(pong.Options{
		Assets:        assets,
		Sounds:        sounds,
		Debug:         *debugMode,
		ShowFPS:       *showFPS,
		ScreenshotDir: *screenshotsDir,
	})

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := pong.LoadTestScript(data)
		if err != nil {
			log.Fatalf("load script: %v", err)
		}
		game.SetTestRunner(runner)
	}

	// Game events flow through a Donburi world; the log subscriber reports
	// points and screen changes.
	world := donburi.NewWorld()
	game.SetEventSink(ecs.NewDonburiStore(world))
	ecs.GameEventType.Subscribe(world, func(w donburi.World, e pong.GameEvent) {
		switch e.Type {
		case pong.EventPointScored:
			log.Printf("point %s: %s", e.Side, e.Scores)
		case pong.EventStateChange:
			log.Printf("screen %s", e.State)
		}
	})
	game.SetUpdateFunc(func() error {
		events.ProcessAllEvents(world)
		return nil
	})

	if err := pong.Run(game, pong.DefaultRunConfig()); err != nil {
		log.Fatal(err)
	}
}
