package repository

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ib-77/craftingtools/pkg/maybe"
)

const allKey = "\x00all"

// Cached keeps lookups from a slower Repository in memory for ttl.
// Only found entities are cached; a miss is asked again next time.
type Cached[K comparable, E any] struct {
	next  Repository[K, E]
	cache *cache.Cache
}

func NewCached[K comparable, E any](next Repository[K, E], ttl time.Duration) *Cached[K, E] {
	cleanup := ttl * 2
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}

	return &Cached[K, E]{
		next:  next,
		cache: cache.New(ttl, cleanup),
	}
}

func (c *Cached[K, E]) GetByID(id K) maybe.Maybe[E] {
	k := cacheKey(id)
	if v, found := c.cache.Get(k); found {
		if e, ok := v.(E); ok {
			return maybe.ToMaybe(e)
		}
	}

	m := c.next.GetByID(id)
	if e, err := m.Get(); err == nil {
		c.cache.SetDefault(k, e)
	}
	return m
}

func (c *Cached[K, E]) GetAll() []E {
	if v, found := c.cache.Get(allKey); found {
		if all, ok := v.([]E); ok {
			out := make([]E, len(all))
			copy(out, all)
			return out
		}
	}

	all := c.next.GetAll()
	stored := make([]E, len(all))
	copy(stored, all)
	c.cache.SetDefault(allKey, stored)
	return all
}

// Flush drops everything cached so far.
func (c *Cached[K, E]) Flush() {
	c.cache.Flush()
}

func cacheKey[K comparable](id K) string {
	return fmt.Sprintf("id:%v", id)
}
