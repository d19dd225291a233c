package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry is one world-global component instance. The value is boxed on
// the heap once and then mutated in place, so pointers handed out by
// Singleton.Get stay valid for the life of the Storage.
type singletonEntry struct {
	box     reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores value as the world's singleton for its type. Passing a
// pointer stores a copy of the pointee. If a singleton of that type already
// exists its value is overwritten in place and existing pointers keep working.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	typ := v.Type()
	if entry, ok := s.singletons[typ]; ok {
		entry.box.Elem().Set(v)
		return
	}

	box := reflect.New(typ)
	box.Elem().Set(v)
	s.singletons[typ] = &singletonEntry{
		box:     box,
		dataPtr: unsafe.Pointer(box.Pointer()),
	}
}

// ReadSingleton fills out, which must be a pointer to a pointer (e.g. **T),
// with the singleton of type T. Returns false and leaves out untouched when no
// such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a component pointer")
	}

	entry, ok := s.singletons[outVal.Elem().Type().Elem()]
	if !ok {
		return false
	}

	outVal.Elem().Set(entry.box)
	return true
}

// getSingletonEntry returns the entry for the given component type, or nil.
func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}
