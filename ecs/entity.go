package ecs

// EntityId packs an archetype ID (upper 32 bits) together with the entity's
// slot index inside that archetype (lower 32 bits). Structural changes such as
// adding or removing a component move the entity to another archetype and
// therefore produce a new EntityId.
type EntityId uint64

// NewEntityId builds an EntityId from an archetype ID and a slot index.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID.
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// EntityRef is a stable handle to an entity. Unlike a raw EntityId it survives
// archetype moves and compaction; a deleted entity leaves the ref with Id == 0.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}
