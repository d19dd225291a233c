package game

import (
	"math/rand/v2"
	"reflect"
	"time"

	"github.com/plus3/snek/ecs"
)

var (
	foodType    = reflect.TypeFor[Food]()
	segmentType = reflect.TypeFor[SnakeSegment]()
)

// OccupancySystem rebuilds the cell index from the frame's entity snapshot.
// It must run before any system that consults or updates the index.
type OccupancySystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		Pos *Position
	}]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *OccupancySystem) Execute(frame *ecs.Frame) {
	occupancy := s.Occupancy.MustGet()

	occupancy.Reset()
	for _, item := range s.Entities.Iter() {
		occupancy.Set(item.Pos.X, item.Pos.Y, item.EntityId)
	}
}

// DirectionSystem turns the head according to the input snapshot. When
// several keys are held the first of left, down, up, right wins. A turn into
// the opposite of the current heading is ignored, the snake keeps going.
type DirectionSystem struct {
	Heads    ecs.Query[struct{ Head *SnakeHead }]
	Controls ecs.Singleton[Controls]
}

func (s *DirectionSystem) Execute(frame *ecs.Frame) {
	controls := s.Controls.MustGet()

	for item := range s.Heads.Values() {
		desired := item.Head.Direction
		switch {
		case controls.Left:
			desired = Left
		case controls.Down:
			desired = Down
		case controls.Up:
			desired = Up
		case controls.Right:
			desired = Right
		}

		if desired != item.Head.Direction.Opposite() {
			item.Head.Direction = desired
		}
	}
}

// MovementSystem advances the snake one cell whenever the move clock fires.
// The head steps along its heading with wrap-around, every body segment takes
// over its predecessor's cell, and the vacated tail cell is remembered so
// GrowthSystem can fill it after a meal. Walking into a body cell other than
// the departing tail ends the run.
type MovementSystem struct {
	Heads ecs.Query[struct {
		ecs.EntityId
		Head *SnakeHead
		Pos  *Position
	}]
	Arena     ecs.Singleton[Arena]
	Snake     ecs.Singleton[Snake]
	Score     ecs.Singleton[Score]
	Clock     ecs.Singleton[MoveClock]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *MovementSystem) Execute(frame *ecs.Frame) {
	snake := s.Snake.MustGet()
	if !snake.Alive {
		return
	}

	clock := s.Clock.MustGet()
	clock.Timer.Tick(frame.DeltaTime)
	if !clock.Timer.JustFinished() {
		return
	}

	arena := s.Arena.MustGet()
	score := s.Score.MustGet()
	occupancy := s.Occupancy.MustGet()

	for _, item := range s.Heads.Iter() {
		dx, dy := item.Head.Direction.Delta()
		nextX, nextY := arena.Wrap(item.Pos.X+dx, item.Pos.Y+dy)

		ate := false
		if occupant, taken := occupancy.At(nextX, nextY); taken {
			switch {
			case frame.Storage.HasComponent(occupant, foodType):
				frame.Commands.Delete(occupant)
				score.Points += PointsPerFood
				score.Eaten++
				ate = true
			case frame.Storage.HasComponent(occupant, segmentType) && occupant != snake.Tail():
				snake.Alive = false
				return
			}
		}

		prev := *item.Pos
		item.Pos.X, item.Pos.Y = nextX, nextY

		for _, segId := range snake.Segments {
			segPos := ecs.ReadComponent[Position](frame.Storage, segId)
			prev, *segPos = *segPos, prev
		}

		snake.TailCell = prev
		snake.Grew = ate

		if !ate {
			occupancy.Clear(prev.X, prev.Y)
		}
		occupancy.Set(nextX, nextY, item.EntityId)
	}
}

// GrowthSystem appends a segment on the cell the tail vacated when the snake
// ate this tick. The spawn goes directly to storage so the segment exists
// before the post-update transforms run.
type GrowthSystem struct {
	Snake     ecs.Singleton[Snake]
	Palette   ecs.Singleton[Palette]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *GrowthSystem) Execute(frame *ecs.Frame) {
	snake := s.Snake.MustGet()
	if !snake.Alive || !snake.Grew {
		return
	}

	segId := SpawnSegment(frame.Storage, s.Palette.MustGet(), snake.TailCell)
	snake.Segments = append(snake.Segments, segId)
	snake.Grew = false

	s.Occupancy.MustGet().Set(snake.TailCell.X, snake.TailCell.Y, segId)
}

// FoodSpawnSystem drops food on a uniformly random free cell each time the
// food clock fires. A full arena skips the drop.
type FoodSpawnSystem struct {
	Rand *rand.Rand

	Arena     ecs.Singleton[Arena]
	Snake     ecs.Singleton[Snake]
	Palette   ecs.Singleton[Palette]
	Clock     ecs.Singleton[FoodClock]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *FoodSpawnSystem) Execute(frame *ecs.Frame) {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	snake := s.Snake.MustGet()
	if !snake.Alive {
		return
	}

	clock := s.Clock.MustGet()
	clock.Timer.Tick(frame.DeltaTime)
	if !clock.Timer.JustFinished() {
		return
	}

	arena := s.Arena.MustGet()
	occupancy := s.Occupancy.MustGet()

	free := make([]Position, 0, arena.CellCount())
	for y := 0; y < arena.Height; y++ {
		for x := 0; x < arena.Width; x++ {
			if _, taken := occupancy.At(x, y); !taken {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		return
	}

	cell := free[s.Rand.IntN(len(free))]
	id := SpawnFood(frame.Storage, s.Palette.MustGet(), cell)
	occupancy.Set(cell.X, cell.Y, id)
}

// StateSystem reacts to run transitions: it fires sound cues, hands finished
// runs to the sink, and rebuilds the world when a restart is requested after
// death. It runs last in the update phase so it observes the tick's outcome.
type StateSystem struct {
	Chime Chime
	Runs  RunSink

	Foods ecs.Query[struct {
		ecs.EntityId
		Food *Food
	}]
	Snake     ecs.Singleton[Snake]
	Score     ecs.Singleton[Score]
	Controls  ecs.Singleton[Controls]
	Palette   ecs.Singleton[Palette]
	MoveClock ecs.Singleton[MoveClock]
	FoodClock ecs.Singleton[FoodClock]

	started   bool
	wasAlive  bool
	lastEaten int
	elapsed   float64
}

func (s *StateSystem) Execute(frame *ecs.Frame) {
	snake := s.Snake.MustGet()
	score := s.Score.MustGet()
	controls := s.Controls.MustGet()

	if !s.started {
		s.started = true
		s.wasAlive = snake.Alive
		s.lastEaten = score.Eaten
	}

	s.elapsed += frame.DeltaTime

	if score.Eaten > s.lastEaten && s.Chime != nil {
		s.Chime.Eat()
	}
	s.lastEaten = score.Eaten

	if s.wasAlive && !snake.Alive {
		if s.Chime != nil {
			s.Chime.GameOver()
		}
		if s.Runs != nil {
			s.Runs.RecordRun(RunSummary{
				Points:   score.Points,
				Length:   snake.Length(),
				Duration: time.Duration(s.elapsed * float64(time.Second)),
			})
		}
	}
	s.wasAlive = snake.Alive

	if controls.Restart && !snake.Alive {
		s.restart(frame)
	}
}

// restart tears down the current run and rebuilds the start state once the
// frame's deletions have flushed.
func (s *StateSystem) restart(frame *ecs.Frame) {
	snake := s.Snake.MustGet()

	frame.Commands.Delete(snake.Head)
	for _, segId := range snake.Segments {
		frame.Commands.Delete(segId)
	}
	for id := range s.Foods.Iter() {
		frame.Commands.Delete(id)
	}

	storage := frame.Storage
	frame.Commands.Defer(func() {
		snake := s.Snake.MustGet()
		snake.Head = SpawnHead(storage, s.Palette.MustGet())
		snake.Segments = nil
		snake.Alive = true
		snake.Grew = false

		*s.Score.MustGet() = Score{}
		s.MoveClock.MustGet().Timer.Reset()
		s.FoodClock.MustGet().Timer.Reset()
	})

	s.elapsed = 0
	s.lastEaten = 0
	s.wasAlive = true
}
