package render

import (
	"sync"

	"github.com/colibri-cam/scenic-driver-skia/canvas"
	"github.com/colibri-cam/scenic-driver-skia/script"
)

// RootID is the reserved script identifier whose program produces the
// frame. Installing any script under this identifier makes it the root.
const RootID = "_root_"

// Scene is the shared mutable state between submitter threads and the
// render thread: the installed scripts, the clear color, and the wake
// signal. All mutation happens under the lock; the render thread takes
// a consistent snapshot at the start of a redraw.
//
// Every mutation wakes the render loop. The guarantee is at least one
// redraw after any mutation, not one redraw per mutation.
type Scene struct {
	mu         sync.RWMutex
	scripts    map[string][]script.Op
	hasRoot    bool
	clearColor canvas.Color

	wake chan struct{}
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		scripts: make(map[string][]script.Op),
		wake:    make(chan struct{}, 1),
	}
}

// Install inserts or replaces a script's operation list. Installing
// under RootID (re)confirms it as the frame's root program.
func (s *Scene) Install(id string, ops []script.Op) {
	s.mu.Lock()
	s.scripts[id] = ops
	if id == RootID {
		s.hasRoot = true
	}
	s.mu.Unlock()
	s.Wake()
}

// InstallAll installs several scripts as one mutation.
func (s *Scene) InstallAll(batch map[string][]script.Op) {
	s.mu.Lock()
	for id, ops := range batch {
		s.scripts[id] = ops
		if id == RootID {
			s.hasRoot = true
		}
	}
	s.mu.Unlock()
	s.Wake()
}

// Remove deletes a script. Removing the root clears the root
// designation.
func (s *Scene) Remove(id string) {
	s.mu.Lock()
	delete(s.scripts, id)
	if id == RootID {
		s.hasRoot = false
	}
	s.mu.Unlock()
	s.Wake()
}

// Clear empties all scripts and the root designation.
func (s *Scene) Clear() {
	s.mu.Lock()
	clear(s.scripts)
	s.hasRoot = false
	s.mu.Unlock()
	s.Wake()
}

// SetClearColor sets the color the frame is cleared with before the
// root script runs.
func (s *Scene) SetClearColor(c canvas.Color) {
	s.mu.Lock()
	s.clearColor = c
	s.mu.Unlock()
	s.Wake()
}

// ClearColor returns the current clear color.
func (s *Scene) ClearColor() canvas.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clearColor
}

// Get returns a script's operations.
func (s *Scene) Get(id string) ([]script.Op, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ops, ok := s.scripts[id]
	return ops, ok
}

// Count returns the number of installed scripts.
func (s *Scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scripts)
}

// HasRoot reports whether a root program is installed.
func (s *Scene) HasRoot() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasRoot
}

// snapshot returns a consistent view for one redraw. The map is a
// shallow copy; operation slices are never mutated after install, so
// sharing them is safe.
func (s *Scene) snapshot() (scripts map[string][]script.Op, clearColor canvas.Color, hasRoot bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scripts = make(map[string][]script.Op, len(s.scripts))
	for id, ops := range s.scripts {
		scripts[id] = ops
	}
	return scripts, s.clearColor, s.hasRoot
}

// Wake signals the render loop that a redraw is needed. Non-blocking;
// coalesces with a pending signal.
func (s *Scene) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// WakeChan returns the channel the render loop waits on. Receiving
// drains the pending signal.
func (s *Scene) WakeChan() <-chan struct{} {
	return s.wake
}
