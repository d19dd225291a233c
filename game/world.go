package game

import "github.com/plus3/snek/ecs"

// Settings carries the tunables for one run of the game.
type Settings struct {
	Arena        Arena
	MoveInterval float64
	FoodInterval float64
	Palette      Palette
}

// DefaultSettings returns the classic 10x10 arena with standard pacing.
func DefaultSettings() Settings {
	return Settings{
		Arena:        Arena{Width: DefaultArenaWidth, Height: DefaultArenaHeight},
		MoveInterval: DefaultMoveInterval,
		FoodInterval: DefaultFoodInterval,
		Palette:      DefaultPalette(),
	}
}

// NewWorld builds a storage with all game component types registered and all
// game singletons in place. Callers with component types of their own, like
// the debug overlay, pass their registration funcs as extras. The snake
// itself is spawned by SetupSystem during the scheduler's startup phase.
func NewWorld(settings Settings, extras ...func(*ecs.ComponentRegistry)) *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, register := range extras {
		register(registry)
	}
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, settings.Arena)
	ecs.NewSingleton(storage, settings.Palette)
	ecs.NewSingleton(storage, Snake{Alive: true})
	ecs.NewSingleton(storage, Score{})
	ecs.NewSingleton(storage, Controls{})
	ecs.NewSingleton(storage, MoveClock{Timer: ecs.NewTimer(settings.MoveInterval, ecs.TimerRepeating)})
	ecs.NewSingleton(storage, FoodClock{Timer: ecs.NewTimer(settings.FoodInterval, ecs.TimerRepeating)})
	ecs.NewSingleton(storage, NewOccupancy(settings.Arena.CellCount()))

	return storage
}
