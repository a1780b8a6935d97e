package repository

import (
	"fmt"

	"github.com/ib-77/craftingtools/pkg/maybe"
)

// Memory is a read-only Repository seeded once at construction. It is safe
// for concurrent use without locking because it is never written again.
type Memory[K comparable, E any] struct {
	byID  map[K]E
	order []E
}

// NewMemory indexes entities by key, keeping their order for GetAll.
func NewMemory[K comparable, E any](key func(E) K, entities ...E) (*Memory[K, E], error) {
	m := &Memory[K, E]{
		byID:  make(map[K]E, len(entities)),
		order: make([]E, 0, len(entities)),
	}

	for _, e := range entities {
		k := key(e)
		if _, ok := m.byID[k]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		m.byID[k] = e
		m.order = append(m.order, e)
	}

	return m, nil
}

func (m *Memory[K, E]) GetByID(id K) maybe.Maybe[E] {
	e, ok := m.byID[id]
	if !ok {
		return maybe.None[E]()
	}
	return maybe.ToMaybe(e)
}

// GetAll returns a copy so callers cannot change the store.
func (m *Memory[K, E]) GetAll() []E {
	out := make([]E, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Memory[K, E]) Len() int {
	return len(m.order)
}
