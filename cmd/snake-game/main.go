package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Lihanq/snake-game/core"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/modes"
	"github.com/Lihanq/snake-game/render"
	"github.com/Lihanq/snake-game/render/renderers"
	"github.com/Lihanq/snake-game/systems"
	"github.com/Lihanq/snake-game/vmath"
)

func main() {
	opts, err := parseFlags(os.Args[1:], time.Now)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "snake-game: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "snake-game: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// run owns the terminal for the whole session and returns when the player quits
func run(opts options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	// Panic Recovery: restore the terminal before the stack trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(opts.colorMode.Style(render.RgbBackground, render.RgbBackground))
	screen.HideCursor()
	screen.Clear()

	cfg := opts.config
	ctx := engine.NewGameContext(
		cfg,
		engine.NewField(cfg.FieldWidth, cfg.FieldHeight),
		vmath.NewFastRand(cfg.Seed),
		engine.NewMonotonicTimeProvider(),
	)
	game := systems.NewGame(ctx)

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator, ctx)

	inputHandler := modes.NewInputHandler(game.Loop, orchestrator.Resize)

	log.Printf("start: field %vx%v step %v frame %v seed %d color %v",
		cfg.FieldWidth, cfg.FieldHeight, cfg.Step, cfg.FrameInterval, cfg.Seed, opts.colorMode)

	// tcell blocks in PollEvent; events reach the main goroutine over a channel
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	core.Go(func() { screen.ChannelEvents(events, quit) })
	defer close(quit)

	draw := func() {
		width, height := orchestrator.Size()
		orchestrator.RenderFrame(render.NewRenderContext(ctx, opts.colorMode, width, height))
	}
	draw()

	// Main game loop
	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-frameTicker.C:
			game.Loop.Tick()

			batch := ctx.Events.Consume()
			for _, ev := range batch {
				log.Printf("frame %d: %v %+v", ev.Frame, ev.Type, ev.Payload)
			}
			orchestrator.Dispatch(batch)
			draw()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !inputHandler.HandleEvent(ev) {
				log.Printf("quit: frame %d score %d", ctx.GetFrameNumber(), ctx.State.Score)
				return nil
			}
		}
	}
}
