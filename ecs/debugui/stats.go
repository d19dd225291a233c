package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/snek/ecs"
)

// frameRing records wall-clock frame times in milliseconds over a sliding
// window, sampled once per render.
type frameRing struct {
	samples []float32
	index   int
	last    time.Time
}

func newFrameRing(frames int) *frameRing {
	return &frameRing{
		samples: make([]float32, frames),
		last:    time.Now(),
	}
}

func (r *frameRing) record() {
	now := time.Now()
	r.samples[r.index] = float32(now.Sub(r.last).Seconds() * 1000.0)
	r.index = (r.index + 1) % len(r.samples)
	r.last = now
}

func (r *frameRing) average() float32 {
	var total float32
	for _, ms := range r.samples {
		total += ms
	}
	return total / float32(len(r.samples))
}

// SpawnStatsWindow spawns an ImguiItem that renders an engine statistics
// window: entity and archetype counts, a frame-time graph over the last
// historyFrames frames, and per-system scheduler timings.
func SpawnStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) ecs.EntityId {
	history := newFrameRing(historyFrames)

	return storage.Spawn(ImguiItem{
		Render: func() {
			history.record()

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(330, 380), imgui.CondOnce)

			if !imgui.BeginV("Engine Stats", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			stats := storage.CollectStats()

			imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
			imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
			imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

			avgFrameTime := history.average()
			imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

			imgui.Separator()
			imgui.Text("Frame Time Graph (ms)")
			imgui.PlotLinesFloatPtr("##frametime", &history.samples[0], int32(len(history.samples)))

			if imgui.TreeNodeStr("Archetype Details") {
				const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
				if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
					imgui.TableSetupColumn("Archetype ID")
					imgui.TableSetupColumn("Components")
					imgui.TableSetupColumn("Entity Count")
					imgui.TableHeadersRow()

					for _, arch := range stats.ArchetypeBreakdown {
						imgui.TableNextRow()
						imgui.TableNextColumn()
						imgui.Text(fmt.Sprintf("0x%X", arch.ID))
						imgui.TableNextColumn()
						imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
						imgui.TableNextColumn()
						imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
					}

					imgui.EndTable()
				}
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("Singleton Details") {
				for _, singletonType := range stats.SingletonTypes {
					imgui.BulletText(singletonType)
				}
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("System Timings") {
				for _, sys := range scheduler.GetStats().Systems {
					imgui.BulletText(fmt.Sprintf("%s: %.3f ms avg, %d runs",
						sys.Name,
						float64(sys.AvgDuration)/float64(time.Millisecond),
						sys.ExecutionCount))
				}
				imgui.TreePop()
			}

			imgui.End()
		},
	})
}
