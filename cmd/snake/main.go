package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fooddonglanh/snake-game/audio"
	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/engine"
	"github.com/fooddonglanh/snake-game/input"
	"github.com/fooddonglanh/snake-game/render"
	"github.com/fooddonglanh/snake-game/render/window"
	"github.com/fooddonglanh/snake-game/service"
	"github.com/fooddonglanh/snake-game/store"
)

const windowTitle = "Snake"

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	dataFlag   = flag.String("data", constants.DefaultDataFile, "High score and history file")
	assetsFlag = flag.String("assets", ".", "Directory containing the assets folder")
	playerFlag = flag.String("player", store.DefaultPlayer(), "Name recorded in the play history")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	scaleFlag  = flag.Float64("scale", 1.5, "Window scale factor")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	audioSvc := audio.NewService()
	storeSvc := store.NewService()

	hub := service.NewHub()
	hub.Register(audioSvc, *muteFlag)
	hub.Register(storeSvc, *dataFlag)

	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	cfg := engine.DefaultConfig()
	e := engine.New(engine.Options{
		Config: cfg,
		Store:  storeSvc.HighScore(),
		Assets: engine.FSAssetLoader{FS: os.DirFS(*assetsFlag)},
	})
	defer e.Close()

	hud := render.NewHUD()
	history := storeSvc.History()
	recorder := &store.Recorder{
		History: history,
		Player:  *playerFlag,
		OnRecord: func(store.Record) {
			hud.SetBoard(history.Recent(*playerFlag, constants.RecentGamesShown))
		},
	}

	pw, ph := cfg.Grid.PixelSize()
	surface := window.NewSurface(pw, ph)
	if err := e.Init(render.NewScene(surface), hud, recorder, audioSvc.Cues()); err != nil {
		log.Printf("engine init: %v", err)
		return
	}

	controller := &input.Controller{Engine: e, OnMute: audioSvc.ToggleMute}
	game := window.NewGame(e, controller, surface, hud)
	if err := window.Run(game, windowTitle, *scaleFlag); err != nil {
		log.Printf("window: %v", err)
	}
	log.Printf("exit: score=%d best=%d", hud.Score, hud.HighScore)
}
