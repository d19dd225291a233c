// snek-stress soaks the game world headlessly: it runs the full system
// schedule at a fixed dt with scripted random input and reports frame
// timings, scheduler stats, game outcomes and memory usage.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/game"
)

const fixedDt = 1.0 / 60.0

func main() {
	frames := flag.Int("frames", 36000, "The number of fixed-dt frames to simulate (36000 = 10 minutes of play).")
	seed := flag.Uint64("seed", 1, "RNG seed for food drops and scripted input.")
	arenaSize := flag.Int("arena", game.DefaultArenaWidth, "Arena width and height in cells.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *arenaSize < 4 {
		log.Fatalf("Arena size %d cannot fit the snake start cell.", *arenaSize)
	}

	log.Println("Starting snek soak...")

	settings := game.DefaultSettings()
	settings.Arena = game.Arena{Width: *arenaSize, Height: *arenaSize}

	storage := game.NewWorld(settings)
	counter := &runCounter{}

	scheduler := ecs.NewScheduler(storage)
	scheduler.RegisterStartup(&game.SetupSystem{})
	scheduler.Register(&ScriptSystem{Rand: rand.New(rand.NewPCG(*seed, *seed^0x9E3779B97F4A7C15))})
	scheduler.Register(&game.OccupancySystem{})
	scheduler.Register(&game.DirectionSystem{}, ecs.Before(&game.MovementSystem{}))
	scheduler.Register(&game.MovementSystem{})
	scheduler.Register(&game.GrowthSystem{})
	scheduler.Register(&game.FoodSpawnSystem{Rand: rand.New(rand.NewPCG(*seed, *seed))})
	scheduler.Register(&game.StateSystem{Chime: game.NopChime{}, Runs: counter})

	report := &Report{
		Frames:         *frames,
		Seed:           *seed,
		Arena:          *arenaSize,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, *frames),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Simulating %d frames on a %dx%d arena...\n", *frames, *arenaSize, *arenaSize)
	startTime := time.Now()

	for i := 0; i < *frames; i++ {
		updateStart := time.Now()
		scheduler.Once(fixedDt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.RunsFinished = counter.Runs
	report.BestPoints = counter.BestPoints
	report.BestLength = counter.BestLength
	report.SystemStats = scheduler.GetStats().Systems

	var score *game.Score
	var snake *game.Snake
	if storage.ReadSingleton(&score) {
		report.FinalPoints = score.Points
		report.FinalEaten = score.Eaten
	}
	if storage.ReadSingleton(&snake) {
		report.FinalLength = snake.Length()
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// ScriptSystem drives the controls with occasional random turns and restarts
// after every death, so a soak exercises movement, eating, growth, collision
// and the restart path without a keyboard.
type ScriptSystem struct {
	Rand *rand.Rand

	Snake    ecs.Singleton[game.Snake]
	Controls ecs.Singleton[game.Controls]
}

func (s *ScriptSystem) Execute(frame *ecs.Frame) {
	controls := s.Controls.MustGet()
	*controls = game.Controls{}

	if !s.Snake.MustGet().Alive {
		controls.Restart = true
		return
	}

	// Turn roughly once every eight frames
	if s.Rand.IntN(8) != 0 {
		return
	}
	switch s.Rand.IntN(4) {
	case 0:
		controls.Left = true
	case 1:
		controls.Down = true
	case 2:
		controls.Up = true
	case 3:
		controls.Right = true
	}
}

// runCounter tallies finished runs for the report.
type runCounter struct {
	Runs       int
	BestPoints int
	BestLength int
}

func (r *runCounter) RecordRun(run game.RunSummary) {
	r.Runs++
	if run.Points > r.BestPoints {
		r.BestPoints = run.Points
	}
	if run.Length > r.BestLength {
		r.BestLength = run.Length
	}
}
