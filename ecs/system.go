package ecs

// System is a unit of behavior executed by the Scheduler every frame. Systems
// are plain structs; Query and Singleton fields are wired automatically at
// registration, any other fields are state that persists between frames.
type System interface {
	Execute(frame *Frame)
}
