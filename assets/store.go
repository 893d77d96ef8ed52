// Package assets holds the resources a scene references by identifier:
// decoded images, streaming textures and typefaces. Scripts carry only
// the identifiers; the embedding environment registers and revokes the
// resources themselves.
package assets

import (
	"hash/fnv"
	"sync"
)

// shardCount spreads keys over independent locks. Must be a power of 2
// for fast modulo via bitwise AND.
const shardCount = 16

// Store is a thread-safe map from resource identifier to resource.
// Unlike a cache there is no eviction: entries live until the embedding
// environment deletes them or the store is cleared.
type Store[V any] struct {
	shards [shardCount]storeShard[V]
}

type storeShard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	s := &Store[V]{}
	for i := range s.shards {
		s.shards[i].entries = make(map[string]V)
	}
	return s
}

func (s *Store[V]) shard(id string) *storeShard[V] {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id)) // fnv.Write never returns an error
	return &s.shards[h.Sum64()&(shardCount-1)]
}

// Put registers a resource, replacing any previous entry with the same
// identifier.
func (s *Store[V]) Put(id string, v V) {
	sh := s.shard(id)
	sh.mu.Lock()
	sh.entries[id] = v
	sh.mu.Unlock()
}

// Get retrieves a resource by identifier.
func (s *Store[V]) Get(id string) (V, bool) {
	sh := s.shard(id)
	sh.mu.RLock()
	v, ok := sh.entries[id]
	sh.mu.RUnlock()
	return v, ok
}

// Delete removes a resource. Reports whether it was present.
func (s *Store[V]) Delete(id string) bool {
	sh := s.shard(id)
	sh.mu.Lock()
	_, ok := sh.entries[id]
	delete(sh.entries, id)
	sh.mu.Unlock()
	return ok
}

// Len returns the number of registered resources.
func (s *Store[V]) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Clear removes all resources.
func (s *Store[V]) Clear() {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		clear(sh.entries)
		sh.mu.Unlock()
	}
}

// Range calls fn for each resource until fn returns false. The snapshot
// is not atomic across shards; entries added or removed concurrently
// may or may not be visited.
func (s *Store[V]) Range(fn func(id string, v V) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for id, v := range sh.entries {
			if !fn(id, v) {
				sh.mu.RUnlock()
				return
			}
		}
		sh.mu.RUnlock()
	}
}
