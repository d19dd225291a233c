package app

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/ecs/debugui"
	"github.com/plus3/snek/game"
)

const scoreHistorySize = 600

// ScoreChart keeps a rolling points history for the overlay plot, roughly the
// last ten seconds at sixty frames per second.
type ScoreChart struct {
	Samples []float32
	Offset  int
}

func NewScoreChart() *ScoreChart {
	return &ScoreChart{
		Samples: make([]float32, scoreHistorySize),
	}
}

// spawnDebugWindows spawns every overlay window: engine statistics from the
// ECS itself plus the game-state windows below.
func spawnDebugWindows(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	debugui.SpawnStatsWindow(storage, scheduler, 100)
	spawnRunWindow(storage)
	spawnScoreChartWindow(storage)
}

func spawnRunWindow(storage *ecs.Storage) {
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var snake *game.Snake
			var score *game.Score
			if !storage.ReadSingleton(&snake) || !storage.ReadSingleton(&score) {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(345, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(150, 220), imgui.CondOnce)

			if !imgui.BeginV("Run", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			if snake.Alive {
				imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "ALIVE")
			} else {
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "DEAD")
			}

			imgui.Text(fmt.Sprintf("Points: %d", score.Points))
			imgui.Text(fmt.Sprintf("Eaten: %d", score.Eaten))
			imgui.Text(fmt.Sprintf("Length: %d", snake.Length()))
			imgui.Separator()

			if head := ecs.ReadComponent[game.Position](storage, snake.Head); head != nil {
				imgui.Text(fmt.Sprintf("Head: (%d, %d)", head.X, head.Y))
			}
			if head := ecs.ReadComponent[game.SnakeHead](storage, snake.Head); head != nil {
				imgui.Text(fmt.Sprintf("Facing: %s", head.Direction))
			}

			imgui.End()
		},
	})
}

func spawnScoreChartWindow(storage *ecs.Storage) {
	storage.AddSingleton(NewScoreChart())

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var chart *ScoreChart
			var score *game.Score
			if !storage.ReadSingleton(&chart) || !storage.ReadSingleton(&score) {
				return
			}

			chart.Samples[chart.Offset] = float32(score.Points)
			chart.Offset = (chart.Offset + 1) % len(chart.Samples)

			// Unroll the ring so the plot reads oldest to newest
			plotSamples := make([]float32, len(chart.Samples))
			copy(plotSamples, chart.Samples[chart.Offset:])
			copy(plotSamples[len(chart.Samples)-chart.Offset:], chart.Samples[:chart.Offset])

			imgui.SetNextWindowPosV(imgui.NewVec2(345, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(150, 170), imgui.CondOnce)

			if !imgui.BeginV("Score", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			if implot.BeginPlotV("Points Over Time", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Points", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("Points", &plotSamples[0], int32(len(plotSamples)))
				implot.EndPlot()
			}

			imgui.End()
		},
	})
}
