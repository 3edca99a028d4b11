package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/softpine/spiderden/game"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and verbose logging")
	watch := flag.Bool("watch", false, "reload prefab stats when their YAML changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(game.BaseWidth, game.BaseHeight)
	ebiten.SetWindowTitle("spiderden")

	g, err := game.NewGame(game.Config{Debug: *debug, WatchPrefabs: *watch}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("setup failed")
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop")
	}
}
