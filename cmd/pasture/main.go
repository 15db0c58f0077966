package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pasture/scene"
	"github.com/plus3/pasture/scene/debugui"
	debugui_ebiten "github.com/plus3/pasture/scene/debugui/ebiten"
	"github.com/plus3/pasture/viewer"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	Title        = "Pasture"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML config file.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	debugUI := flag.Bool("debug-ui", false, "Show the Dear ImGui debug panels.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The ImGui backend creates the window itself, so it has to exist
	// before any other window setup
	var overlay *debugui_ebiten.ImguiBackend
	if *debugUI {
		overlay = debugui_ebiten.NewImguiBackend(Title, ScreenWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	input := viewer.NewEbitenInput()
	s := scene.NewDefaultScene(cfg, scene.WithInput(input), scene.WithLogger(logger))

	game := viewer.NewGame(s, ScreenWidth, ScreenHeight)
	if overlay != nil {
		ui := debugui.Install(s)
		input.Captured = ui.Input.Captured
		game.Overlay = overlay
		game.ShowHUD = false
	}

	logger.Info("starting viewer", "entities", s.Len(), "debug_ui", *debugUI)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
