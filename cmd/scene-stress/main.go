package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	extraTrees := flag.Int("trees", 10000, "Extra trees to scatter over the default scene.")
	configPath := flag.String("config", "", "Optional TOML config file.")
	renderEvery := flag.Int("render-every", 1, "Render the scene every N ticks (0 disables rendering).")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("starting scene stress test")

	keys := scene.NewKeyState()
	s := scene.NewDefaultScene(cfg, scene.WithInput(keys), scene.WithLogger(logger))

	logger.Info("populating scene", "trees", *extraTrees)
	for i := 0; i < *extraTrees; i++ {
		pos := mgl64.Vec3{
			cfg.World.Min + rand.Float64()*(cfg.World.Max-cfg.World.Min),
			cfg.World.Min + rand.Float64()*(cfg.World.Max-cfg.World.Min),
			0,
		}
		s.AddEntity(scene.NewTree(fmt.Sprintf("Stress_%d", i), pos))
	}
	logger.Info("population complete", "entities", s.Len())

	report := &Report{
		Duration:       *duration,
		Entities:       s.Len(),
		RenderEvery:    *renderEvery,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rec := &scene.Recorder{}
	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			script(keys, totalUpdates)

			updateStart := time.Now()
			s.Update(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			keys.Advance()

			if *renderEvery > 0 && totalUpdates%int64(*renderEvery) == 0 {
				rec.Reset()
				renderStart := time.Now()
				s.Render(rec)
				report.RenderTime.Samples = append(report.RenderTime.Samples, time.Since(renderStart))
				report.Primitives = rec.Primitives()
				report.MaxFrameDepth = max(report.MaxFrameDepth, rec.MaxDepth)
				if rec.Pushes != rec.Pops {
					report.Unbalanced++
				}
			}

			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.RenderTime.Finalize()
	report.Systems = s.Scheduler().GetStats().Systems
	if cow, ok := s.Subject(); ok {
		report.FinalPosition = cow.Transform.Position()
		report.FinalHeading = cow.Heading()
	}
	report.CameraFrozen = s.Camera().Frozen()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", "updates", totalUpdates)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// script drives the subject and camera in a repeating pattern so every
// control path runs during the test
func script(keys *scene.KeyState, tick int64) {
	keys.ReleaseAll()
	keys.Press(scene.KeyForward)

	phase := tick % 600
	switch {
	case phase < 150:
		keys.Press(scene.KeyTurnLeft)
	case phase < 300:
		keys.Press(scene.KeyModeHead)
		keys.Press(scene.KeyUp)
		keys.Press(scene.KeyLeft)
	case phase < 450:
		keys.Press(scene.KeyModeTail)
		keys.Press(scene.KeyDown)
		keys.Press(scene.KeyOrbitRight)
	default:
		keys.Press(scene.KeyModeMovement)
		keys.Press(scene.KeyTurnRight)
		keys.Press(scene.KeyZoomOut)
	}

	switch phase {
	case 0, 300:
		keys.Press(scene.KeyCameraToggle)
	case 599:
		keys.Press(scene.KeyResetPose)
		keys.Press(scene.KeyCameraReset)
	}
}
