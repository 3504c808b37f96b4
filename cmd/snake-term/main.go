package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/fooddonglanh/snake-game/audio"
	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/engine"
	"github.com/fooddonglanh/snake-game/input"
	"github.com/fooddonglanh/snake-game/render"
	"github.com/fooddonglanh/snake-game/service"
	"github.com/fooddonglanh/snake-game/store"
	"github.com/fooddonglanh/snake-game/terminal"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	dataFlag   = flag.String("data", constants.DefaultDataFile, "High score and history file")
	assetsFlag = flag.String("assets", ".", "Directory containing the assets folder")
	playerFlag = flag.String("player", store.DefaultPlayer(), "Name recorded in the play history")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	modeFlag   = flag.String("mode", terminal.ModeQuadrant.String(), "Cell mode: quadrant, background")
)

func main() {
	// Restore the terminal even if the loop goroutine panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	mode, ok := terminal.ParseRenderMode(*modeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *modeFlag)
		os.Exit(2)
	}

	screenSvc := terminal.NewService()
	audioSvc := audio.NewService()
	storeSvc := store.NewService()

	hub := service.NewHub()
	hub.Register(screenSvc)
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
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider())
	e := engine.New(engine.Options{
		Config: cfg,
		Loop:   loop,
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

	presenter := terminal.NewPresenter(screenSvc.Screen(), hud)
	presenter.SetMode(mode)
	pw, ph := cfg.Grid.PixelSize()
	scene := render.NewScene(render.NewCanvas(pw, ph)).WithPresenter(presenter)

	if err := e.Init(scene, hud, recorder, audioSvc.Cues()); err != nil {
		log.Printf("engine init: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller := &input.Controller{
		Engine: e,
		OnQuit: cancel,
		OnMute: audioSvc.ToggleMute,
	}
	keys := input.DefaultKeyTable()
	screen := screenSvc.Screen()

	core.Go(func() {
		for {
			var ev tcell.Event
			select {
			case <-ctx.Done():
				return
			case ev = <-screenSvc.Events():
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				in := keys.Lookup(terminal.TranslateKey(ev))
				if in.Type == input.IntentNone {
					continue
				}
				loop.Post(func() { controller.Handle(in) })
			case *tcell.EventResize:
				loop.Post(screen.Sync)
			}
		}
	})

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop stopped: %v", err)
	}
	log.Printf("exit: score=%d best=%d", hud.Score, hud.HighScore)
}
