package assets

import (
	"strconv"
	"sync"
	"testing"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore[int]()

	s.Put("key1", 42)

	val, ok := s.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	_, ok = s.Get("nonexistent")
	if ok {
		t.Error("expected nonexistent key to not exist")
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore[string]()

	s.Put("id", "first")
	s.Put("id", "second")

	val, _ := s.Get("id")
	if val != "second" {
		t.Errorf("expected second, got %q", val)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore[int]()

	s.Put("key1", 42)

	if !s.Delete("key1") {
		t.Error("expected Delete to return true for existing key")
	}
	if _, ok := s.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}
	if s.Delete("nonexistent") {
		t.Error("expected Delete to return false for non-existing key")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()

	for i := 0; i < 50; i++ {
		s.Put(strconv.Itoa(i), i)
	}
	if s.Len() != 50 {
		t.Errorf("expected 50 entries, got %d", s.Len())
	}

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", s.Len())
	}
}

func TestStoreRange(t *testing.T) {
	s := NewStore[int]()
	for i := 0; i < 20; i++ {
		s.Put(strconv.Itoa(i), i)
	}

	seen := map[string]int{}
	s.Range(func(id string, v int) bool {
		seen[id] = v
		return true
	})
	if len(seen) != 20 {
		t.Errorf("visited %d entries, want 20", len(seen))
	}

	// Early stop.
	count := 0
	s.Range(func(string, int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("expected early stop after 1 entry, got %d", count)
	}
}

func TestStoreConcurrent(t *testing.T) {
	s := NewStore[int]()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := strconv.Itoa(g*100 + i)
				s.Put(id, i)
				if _, ok := s.Get(id); !ok {
					t.Errorf("lost key %s", id)
				}
			}
		}(g)
	}
	wg.Wait()

	if s.Len() != 800 {
		t.Errorf("expected 800 entries, got %d", s.Len())
	}
}
