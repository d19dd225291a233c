package game

import "time"

// Chime receives gameplay sound cues. The audio package provides a speaker
// implementation; NopChime keeps a run silent.
type Chime interface {
	Eat()
	GameOver()
}

// NopChime ignores all cues.
type NopChime struct{}

func (NopChime) Eat()      {}
func (NopChime) GameOver() {}

// RunSummary describes one finished run.
type RunSummary struct {
	Points   int
	Length   int
	Duration time.Duration
}

// RunSink receives finished runs. Implementations own their error handling;
// a failed save must not stall the game loop.
type RunSink interface {
	RecordRun(run RunSummary)
}

// NopRunSink discards finished runs.
type NopRunSink struct{}

func (NopRunSink) RecordRun(RunSummary) {}
