// Package anchor maps native object handles to stable Go values.
//
// Toolkit bindings such as gotk4 return a new Go wrapper every time a native
// object crosses the boundary, so wrappers cannot be used as identities. An
// Anchor is created per native handle and stays the same until the native
// object is destroyed and the anchor released.
package anchor

import "sync"

// Anchor is the canonical Go identity of a native object.
type Anchor struct {
	handle   uintptr
	registry *Registry
}

// Handle returns the native handle.
func (a *Anchor) Handle() uintptr {
	return a.handle
}

// Release drops the anchor from its registry.
func (a *Anchor) Release() {
	a.registry.release(a)
}

// Registry owns the anchors of live native objects.
type Registry struct {
	mu      sync.Mutex
	anchors map[uintptr]*Anchor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{anchors: make(map[uintptr]*Anchor)}
}

// Acquire returns the anchor of handle. When the anchor is new, onNew is
// called with it so the caller can hook the native destroy notification to
// Anchor.Release.
func (r *Registry) Acquire(handle uintptr, onNew func(*Anchor)) *Anchor {
	r.mu.Lock()
	a, ok := r.anchors[handle]
	if !ok {
		a = &Anchor{handle: handle, registry: r}
		r.anchors[handle] = a
	}
	r.mu.Unlock()

	if !ok && onNew != nil {
		onNew(a)
	}
	return a
}

// Lookup returns the anchor of handle without creating one.
func (r *Registry) Lookup(handle uintptr) (*Anchor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.anchors[handle]
	return a, ok
}

// Len returns the number of live anchors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.anchors)
}

// release only removes a if it is still the registered anchor of its handle,
// since the native address may already have been reused.
func (r *Registry) release(a *Anchor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.anchors[a.handle]; ok && current == a {
		delete(r.anchors, a.handle)
	}
}
