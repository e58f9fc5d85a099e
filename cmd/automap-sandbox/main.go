// automap-sandbox shows a generated maze through the overview map engine
//
// Keys: h/j/k/l or arrows pan, +/- zoom, 0 whole level, f follow, r rotate,
// w/a/s/d move the player, x auto walk, p print window, Tab next view, q quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-automap/config"
	"github.com/lixenwraith/vi-automap/level"
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/automap.log")
	seedFlag   = flag.Int64("seed", 0, "Level seed, overrides the config (0 = keep config)")
	splitFlag  = flag.Bool("split", false, "Show two independent overview windows")
	soundFlag  = flag.Bool("sound", true, "Play a tone when zoom hits a limit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Level.Seed = *seedFlag
	}
	cfg.Audio.Enabled = cfg.Audio.Enabled && *soundFlag

	lvl, err := level.Generate(level.Options{
		Width:        cfg.Level.Width,
		Height:       cfg.Level.Height,
		CellSize:     cfg.Level.Cell,
		BraidPercent: cfg.Level.Braid,
		Seed:         cfg.Level.Seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Info("level generated", "seed", lvl.Seed, "walls", len(lvl.Walls), "bounds", lvl.Bounds())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("sandbox crashed", "panic", r)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mAUTOMAP SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	c := newCue(cfg.Audio.Enabled, logger)

	s, err := newSandbox(screen, cfg, lvl, *splitFlag, c, logger)
	if err != nil {
		c.close()
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	s.run()

	s.close()
	c.close()
	screen.Fini()
}
