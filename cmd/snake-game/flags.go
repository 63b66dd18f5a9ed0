package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/engine"
	"github.com/Lihanq/snake-game/render"
)

// options is the parsed command line
type options struct {
	debug     bool
	config    engine.Config
	colorMode render.ColorMode
}

// parseFlags builds options from args; every flag defaults to the standard game
func parseFlags(args []string, now func() time.Time) (options, error) {
	cfg := engine.DefaultConfig()

	fs := flag.NewFlagSet("snake-game", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seed := fs.Uint64("seed", 0, "Food placement seed, 0 picks one from the clock")
	step := fs.Float64("step", cfg.Step, "Head travel per frame in field units")
	fps := fs.Int("fps", 0, fmt.Sprintf("Frames per second (%d-%d), 0 for the default %v frame",
		constants.MinFramesPerSecond, constants.MaxFramesPerSecond, cfg.FrameInterval))
	width := fs.Float64("width", cfg.FieldWidth, "Field width in field units")
	height := fs.Float64("height", cfg.FieldHeight, "Field height in field units")
	color := fs.String("color", "auto", "Color mode: auto, truecolor, 256")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *fps != 0 {
		if *fps < constants.MinFramesPerSecond || *fps > constants.MaxFramesPerSecond {
			return options{}, fmt.Errorf("fps %d out of range %d-%d",
				*fps, constants.MinFramesPerSecond, constants.MaxFramesPerSecond)
		}
		cfg.FrameInterval = time.Second / time.Duration(*fps)
	}

	cfg.Step = *step
	cfg.FieldWidth = *width
	cfg.FieldHeight = *height
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid configuration: %w", err)
	}

	mode, err := render.ParseColorMode(*color)
	if err != nil {
		return options{}, fmt.Errorf("invalid -color: %w", err)
	}

	return options{
		debug:     *debug,
		config:    cfg,
		colorMode: mode,
	}, nil
}
