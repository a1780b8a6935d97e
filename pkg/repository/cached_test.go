package repository

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/craftingtools/pkg/maybe"
)

type countingRepo struct {
	next   Repository[int, item]
	byID   atomic.Int32
	getAll atomic.Int32
}

func (c *countingRepo) GetByID(id int) maybe.Maybe[item] {
	c.byID.Add(1)
	return c.next.GetByID(id)
}

func (c *countingRepo) GetAll() []item {
	c.getAll.Add(1)
	return c.next.GetAll()
}

func newCounting(t *testing.T) *countingRepo {
	t.Helper()
	m, err := NewMemory(itemKey, items...)
	require.NoError(t, err)
	return &countingRepo{next: m}
}

func TestCached_GetByIDHitsOnce(t *testing.T) {
	t.Parallel()

	backend := newCounting(t)
	c := NewCached[int, item](backend, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, maybe.Some(item{2, "Chemist"}), c.GetByID(2))
	}
	assert.EqualValues(t, 1, backend.byID.Load())
}

func TestCached_MissIsNotCached(t *testing.T) {
	t.Parallel()

	backend := newCounting(t)
	c := NewCached[int, item](backend, time.Minute)

	assert.True(t, c.GetByID(42).IsNone())
	assert.True(t, c.GetByID(42).IsNone())
	assert.EqualValues(t, 2, backend.byID.Load())
}

func TestCached_GetAll(t *testing.T) {
	t.Parallel()

	backend := newCounting(t)
	c := NewCached[int, item](backend, 0)

	first := c.GetAll()
	first[0].name = "changed"

	assert.Equal(t, items, c.GetAll())
	assert.EqualValues(t, 1, backend.getAll.Load())

	c.Flush()
	assert.Equal(t, items, c.GetAll())
	assert.EqualValues(t, 2, backend.getAll.Load())
}
