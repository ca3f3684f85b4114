package sinkhole

import "iter"

// Pool is a fixed-capacity arena of entity slots. Slot indices are stable
// for the lifetime of the pool; a slot is reused as soon as it is released.
// The active bitset is kept apart from the payload so callers can enumerate
// live entities without knowing the entity type.
type Pool[T any] struct {
	slots  []T
	active []bool
}

// NewPool allocates a pool with the given number of slots.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Spawn stores v in the first inactive slot and returns its index, or -1
// when every slot is taken.
func (p *Pool[T]) Spawn(v T) int {
	for i, used := range p.active {
		if !used {
			p.slots[i] = v
			p.active[i] = true
			return i
		}
	}
	return -1
}

// Despawn releases slot i. Releasing an inactive or out-of-range slot is a no-op.
func (p *Pool[T]) Despawn(i int) {
	if i >= 0 && i < len(p.active) {
		p.active[i] = false
	}
}

// IsActive reports whether slot i holds a live entity.
func (p *Pool[T]) IsActive(i int) bool {
	return i >= 0 && i < len(p.active) && p.active[i]
}

// At returns the payload of slot i. The pointer is only valid until the
// end of the current frame.
func (p *Pool[T]) At(i int) *T {
	return &p.slots[i]
}

// ActiveCount returns the number of live entities.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, used := range p.active {
		if used {
			n++
		}
	}
	return n
}

// All yields every live entity with its slot index. Slots released during
// iteration are skipped from then on.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.active[i] {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// Clear releases every slot.
func (p *Pool[T]) Clear() {
	clear(p.active)
}

// ActiveMask returns a copy of the active bitset.
func (p *Pool[T]) ActiveMask() []bool {
	return append([]bool(nil), p.active...)
}

// Slots returns a copy of every slot payload, live or not.
func (p *Pool[T]) Slots() []T {
	return append([]T(nil), p.slots...)
}
