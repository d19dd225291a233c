package ecs

import "reflect"

// Commands buffers structural changes until the end of the frame so systems
// never mutate storage while other systems are still iterating it. Flush
// applies deletes first, then removes, adds, spawns, and finally any deferred
// functions.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after all structural changes of the frame have been
// applied. Useful for work that needs the post-flush world, like respawning.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition. The entity id may be stale by the
// time the flush runs; Flush tracks archetype moves within the frame and
// retargets the operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Flush applies all buffered commands to storage and resets the buffers.
// Multiple commands may target the same entity within one frame; because each
// add or remove moves the entity to a new archetype and mints a new id, Flush
// keeps an old-id to new-id map and resolves every command through it.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool)
	moved := make(map[EntityId]EntityId)

	resolve := func(id EntityId) EntityId {
		for id != 0 {
			next, ok := moved[id]
			if !ok {
				break
			}
			id = next
		}
		return id
	}

	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range c.removes {
		id := resolve(cmd.entity)
		if id == 0 || deleted[id] {
			continue
		}
		newId := storage.RemoveComponent(id, cmd.compType)
		if newId != id {
			moved[id] = newId
		}
	}

	for _, cmd := range c.adds {
		id := resolve(cmd.entity)
		if id == 0 || deleted[id] {
			continue
		}
		newId := storage.AddComponent(id, cmd.component)
		if newId != id {
			moved[id] = newId
		}
	}

	for _, cmd := range c.spawns {
		storage.Spawn(cmd.components...)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
