package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton is a cached accessor for a world-global component instance that is
// not tied to any entity. Systems declare Singleton fields for shared state
// like clocks, score or input; the Scheduler wires them up at registration.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton returns an accessor for the singleton of type T, creating it in
// storage if absent. A single optional initializer provides the initial value;
// without one a zero value is stored. After the call the singleton exists.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	var zero T
	componentType := reflect.TypeOf(zero)

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init wires the accessor to a storage without creating the singleton. The
// Scheduler calls this for every Singleton field it finds during registration.
func (s *Singleton[T]) Init(storage *Storage) {
	var zero T
	s.storage = storage
	s.componentType = reflect.TypeOf(zero)
	s.updateCache()
}

// Get returns a pointer to the singleton value, or nil if no singleton of
// this type has been added to storage yet.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// MustGet returns a pointer to the singleton value and panics with the type
// name if it is missing. Systems use this for state the world cannot run
// without.
func (s *Singleton[T]) MustGet() *T {
	value := s.Get()
	if value == nil {
		panic("ecs: required singleton " + s.componentType.String() + " not present in storage")
	}
	return value
}

// updateCache refreshes the cached pointer from storage.
func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	entry := s.storage.getSingletonEntry(s.componentType)
	if entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return s.componentPtr != nil
}
