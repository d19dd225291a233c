package ecs

// Frame carries everything a system needs for one tick: the elapsed time
// since the previous tick, the command buffer for structural changes, and the
// storage for direct reads.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newFrame(dt float64, storage *Storage) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
