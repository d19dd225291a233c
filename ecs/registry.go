package ecs

import "reflect"

// ComponentRegistry maps component types to store factories. Every Storage
// owns one, so independent worlds can register different component sets
// without stepping on each other.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers the component type T with the registry. Spawning
// an entity with an unregistered component type panics, so this must run for
// every component type before first use.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() iComponentStorage {
		return &componentStore[T]{}
	}
}

// getFactory returns the store factory for t, or nil if t was never registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}
