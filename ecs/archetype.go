package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype groups all entities that share the exact same set of component
// types. Each component type gets its own store; an entity occupies the same
// slot index in every store of its archetype.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
	refs     *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given sorted component types.
// Panics if any of the types was never registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
		refs:     intmap.New[EntityId, weak.Pointer[EntityRef]](256),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends the given components and returns the slot index of the new
// entity. All stores hand out the same index because they grow in lockstep.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		for idx, typ := range a.types {
			if typ == compType {
				slot = a.storages[idx].Append(comp)
			}
		}
	}

	return uint32(slot)
}

// GetComponent returns a pointer to the entity's component of the given type,
// or nil if this archetype does not carry that type.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	for i, typ := range a.types {
		if typ == compType {
			return a.storages[i].Get(int(entityIndex))
		}
	}
	return nil
}

// Delete frees the entity's slot in every store and invalidates any live
// EntityRef pointing at it. Other slot indices are unaffected.
func (a *Archetype) Delete(entityIndex uint32) {
	entityId := NewEntityId(a.id, entityIndex)

	if weakPtr, ok := a.refs.Get(entityId); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(entityId)
	}

	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// HasComponent reports whether this archetype carries the given component type.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// EntityCount returns the number of live entities stored in this archetype.
func (a *Archetype) EntityCount() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Count()
}

// Compact repacks every store so free slots disappear. Live EntityRefs are
// rewritten to the new indices; raw EntityIds held elsewhere become stale.
func (a *Archetype) Compact() {
	if len(a.storages) == 0 {
		return
	}

	// All stores move entities identically, so the first store's mapping
	// serves as the canonical one.
	indexMap := a.storages[0].Compact()
	for i := 1; i < len(a.storages); i++ {
		a.storages[i].Compact()
	}

	updatedRefs := make(map[EntityId]weak.Pointer[EntityRef])
	for oldIdx, newIdx := range indexMap {
		oldEntityId := NewEntityId(a.id, uint32(oldIdx))
		weakPtr, ok := a.refs.Get(oldEntityId)
		if !ok {
			continue
		}
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = NewEntityId(a.id, uint32(newIdx))
			updatedRefs[ref.Id] = weakPtr
		}
	}

	// Rebuilding the map drops dead weak pointers along the way.
	a.refs.Clear()
	for newEntityId, weakPtr := range updatedRefs {
		a.refs.Put(newEntityId, weakPtr)
	}
}

// Iter yields the EntityId of every live entity in this archetype.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
