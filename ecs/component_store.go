package ecs

import "iter"

const storeBlockSize = 64

// componentStore keeps components of a single type T in fixed-size blocks.
// Slots freed by deletion are recycled before the store grows, so indices stay
// dense without moving live components around.
type componentStore[T any] struct {
	blocks    [][storeBlockSize]T
	filled    [][storeBlockSize]bool
	freeSlots []int
	nextIndex int
}

// Append stores a component and returns the slot index it landed in.
// Accepts either a T or a *T; anything else returns -1.
func (cs *componentStore[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	if n := len(cs.freeSlots); n > 0 {
		index := cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]

		cs.blocks[index/storeBlockSize][index%storeBlockSize] = value
		cs.filled[index/storeBlockSize][index%storeBlockSize] = true
		return index
	}

	index := cs.nextIndex
	cs.nextIndex++

	if index/storeBlockSize >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, [storeBlockSize]T{})
		cs.filled = append(cs.filled, [storeBlockSize]bool{})
	}

	cs.blocks[index/storeBlockSize][index%storeBlockSize] = value
	cs.filled[index/storeBlockSize][index%storeBlockSize] = true
	return index
}

// Get returns a pointer to the component at index, or nil if the slot is empty.
func (cs *componentStore[T]) Get(index int) any {
	if index < 0 || index/storeBlockSize >= len(cs.blocks) {
		return nil
	}
	if !cs.filled[index/storeBlockSize][index%storeBlockSize] {
		return nil
	}
	return &cs.blocks[index/storeBlockSize][index%storeBlockSize]
}

// Delete zeroes the slot at index and queues it for reuse.
func (cs *componentStore[T]) Delete(index int) {
	if index < 0 || index/storeBlockSize >= len(cs.blocks) {
		return
	}
	if cs.filled[index/storeBlockSize][index%storeBlockSize] {
		cs.filled[index/storeBlockSize][index%storeBlockSize] = false
		var zero T
		cs.blocks[index/storeBlockSize][index%storeBlockSize] = zero
		cs.freeSlots = append(cs.freeSlots, index)
	}
}

// Has reports whether a live component occupies the slot at index.
func (cs *componentStore[T]) Has(index int) bool {
	if index < 0 || index/storeBlockSize >= len(cs.blocks) {
		return false
	}
	return cs.filled[index/storeBlockSize][index%storeBlockSize]
}

// Count returns the number of live components in the store.
func (cs *componentStore[T]) Count() int {
	return cs.nextIndex - len(cs.freeSlots)
}

// Compact repacks live components to the front of the store and returns the
// old-index to new-index mapping for every component that moved.
func (cs *componentStore[T]) Compact() map[int]int {
	indexMap := make(map[int]int)

	live := cs.nextIndex - len(cs.freeSlots)
	if live == 0 {
		cs.blocks = make([][storeBlockSize]T, 1)
		cs.filled = make([][storeBlockSize]bool, 1)
		cs.freeSlots = nil
		cs.nextIndex = 0
		return indexMap
	}

	numBlocks := (live + storeBlockSize - 1) / storeBlockSize
	newBlocks := make([][storeBlockSize]T, numBlocks)
	newFilled := make([][storeBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < cs.nextIndex; readIdx++ {
		if !cs.filled[readIdx/storeBlockSize][readIdx%storeBlockSize] {
			continue
		}

		indexMap[readIdx] = writePos
		newBlocks[writePos/storeBlockSize][writePos%storeBlockSize] = cs.blocks[readIdx/storeBlockSize][readIdx%storeBlockSize]
		newFilled[writePos/storeBlockSize][writePos%storeBlockSize] = true
		writePos++
	}

	cs.blocks = newBlocks
	cs.filled = newFilled
	cs.freeSlots = nil
	cs.nextIndex = writePos

	return indexMap
}

// Iter yields the indices of all live components in ascending order.
func (cs *componentStore[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if i/storeBlockSize >= len(cs.filled) {
				continue
			}
			if cs.filled[i/storeBlockSize][i%storeBlockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
