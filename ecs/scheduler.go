package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats summarizes execution across all registered systems.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds execution timings for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// queryExecutor is satisfied by every Query[T]. The scheduler snapshots all
// query fields it discovered at registration before systems run.
type queryExecutor interface {
	Execute()
}

type registration struct {
	system System
	stats  *systemStatsInternal
	before []string
}

// RegisterOption adjusts how an update system is scheduled.
type RegisterOption func(*registration)

// Before constrains the system being registered to run ahead of every system
// of target's type. Only the type is inspected, so passing a zero-value
// instance is fine. Constraints against types never registered are ignored.
func Before(target System) RegisterOption {
	name := systemName(target)
	return func(r *registration) {
		r.before = append(r.before, name)
	}
}

// Scheduler owns system execution for one world. Systems run in three phases
// each frame: startup systems once on the first frame, then update systems,
// then post-update systems. Queries of all registered systems are snapshotted
// at the start of the frame and again before the post-update phase, so a
// system never observes a half-synchronized world.
type Scheduler struct {
	storage    *Storage
	startup    []*registration
	update     []*registration
	postUpdate []*registration

	// update systems in constraint-resolved order, rebuilt when dirty
	ordered    []*registration
	orderDirty bool
	startupRan bool

	queries []queryExecutor
}

// NewScheduler creates a scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// RegisterStartup adds a system that executes once, at the beginning of the
// first frame. Startup systems run in registration order and their commands
// are flushed before the update phase, so entities they spawn are visible to
// update systems in that same frame.
func (s *Scheduler) RegisterStartup(system System) {
	s.startup = append(s.startup, s.newRegistration(system))
}

// Register adds an update system. Without options, update systems run in
// registration order; Before introduces ordering constraints on top of that.
func (s *Scheduler) Register(system System, opts ...RegisterOption) {
	reg := s.newRegistration(system)
	for _, opt := range opts {
		opt(reg)
	}
	s.update = append(s.update, reg)
	s.orderDirty = true
}

// RegisterPostUpdate adds a system that runs after the update phase every
// frame, in registration order. Queries are re-synchronized first, so
// post-update systems observe entities the update phase spawned directly on
// storage. Command buffers still flush only at the end of the frame.
func (s *Scheduler) RegisterPostUpdate(system System) {
	s.postUpdate = append(s.postUpdate, s.newRegistration(system))
}

func (s *Scheduler) newRegistration(system System) *registration {
	s.initializeFields(system)
	return &registration{
		system: system,
		stats: &systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		},
	}
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// initializeFields wires up the Query and Singleton fields of a system struct
// and records its queries for per-frame synchronization.
func (s *Scheduler) initializeFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()

		if strings.HasPrefix(typeName, "Query[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Query field: " + fieldType.Name)
			}

			initMethod.Call([]reflect.Value{
				reflect.ValueOf(s.storage),
			})

			if q, ok := field.Addr().Interface().(queryExecutor); ok {
				s.queries = append(s.queries, q)
			}
			continue
		}

		if strings.HasPrefix(typeName, "Singleton[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Singleton field: " + fieldType.Name)
			}

			initMethod.Call([]reflect.Value{
				reflect.ValueOf(s.storage),
			})
			continue
		}
	}
}

// resolveOrder recomputes the execution order of update systems. Registration
// order is preserved except where Before constraints demand otherwise; a
// constraint cycle panics.
func (s *Scheduler) resolveOrder() {
	n := len(s.update)

	nameIdx := make(map[string][]int, n)
	for i, reg := range s.update {
		nameIdx[reg.stats.name] = append(nameIdx[reg.stats.name], i)
	}

	indegree := make([]int, n)
	successors := make([][]int, n)
	for i, reg := range s.update {
		for _, target := range reg.before {
			for _, j := range nameIdx[target] {
				if j == i {
					continue
				}
				successors[i] = append(successors[i], j)
				indegree[j]++
			}
		}
	}

	ordered := make([]*registration, 0, n)
	done := make([]bool, n)

	for len(ordered) < n {
		pick := -1
		for i := 0; i < n; i++ {
			if !done[i] && indegree[i] == 0 {
				pick = i
				break
			}
		}
		if pick == -1 {
			panic("scheduler: Before constraints form a cycle")
		}

		done[pick] = true
		ordered = append(ordered, s.update[pick])
		for _, j := range successors[pick] {
			indegree[j]--
		}
	}

	s.ordered = ordered
	s.orderDirty = false
}

func (s *Scheduler) syncQueries() {
	for _, q := range s.queries {
		q.Execute()
	}
}

func (s *Scheduler) runSystem(reg *registration, frame *Frame) {
	start := time.Now()
	reg.system.Execute(frame)
	duration := time.Since(start)

	stats := reg.stats
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Once executes one frame with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.storage)

	if !s.startupRan {
		s.startupRan = true
		for _, reg := range s.startup {
			s.runSystem(reg, frame)
		}
		frame.Commands.Flush(s.storage)
	}

	s.syncQueries()

	if s.orderDirty {
		s.resolveOrder()
	}
	for _, reg := range s.ordered {
		s.runSystem(reg, frame)
	}

	if len(s.postUpdate) > 0 {
		s.syncQueries()
		for _, reg := range s.postUpdate {
			s.runSystem(reg, frame)
		}
	}

	frame.Commands.Flush(s.storage)
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns execution statistics for all systems, listed in execution
// order: startup, then update, then post-update.
func (s *Scheduler) GetStats() *SchedulerStats {
	if s.orderDirty {
		s.resolveOrder()
	}

	all := make([]*registration, 0, len(s.startup)+len(s.ordered)+len(s.postUpdate))
	all = append(all, s.startup...)
	all = append(all, s.ordered...)
	all = append(all, s.postUpdate...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Systems:     make([]SystemStats, len(all)),
	}

	var totalExecs int64
	for i, reg := range all {
		internal := reg.stats

		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
