package body

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownBody is returned when a name does not match any catalog body.
var ErrUnknownBody = errors.New("body: unknown body")

// Registry owns the body collection for the lifetime of the process.
// The frame loop steps angles and the editing panel applies edits from
// a different goroutine in TUI mode, so every access goes through the
// registry lock; edits are therefore atomic between frames.
type Registry struct {
	mu     sync.RWMutex
	order  []*Body
	byName map[string]*Body
}

// NewRegistry builds the registry from the catalog specs, preserving
// catalog order for rendering and listings.
func NewRegistry(specs []Spec) (*Registry, error) {
	r := &Registry{
		order:  make([]*Body, 0, len(specs)),
		byName: make(map[string]*Body, len(specs)),
	}
	for _, s := range specs {
		if _, dup := r.byName[s.Name]; dup {
			return nil, fmt.Errorf("body: duplicate name %q", s.Name)
		}
		b, err := New(s)
		if err != nil {
			return nil, err
		}
		r.order = append(r.order, b)
		r.byName[s.Name] = b
	}
	return r, nil
}

// Names returns the body names in catalog order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	for i, b := range r.order {
		names[i] = b.Name
	}
	return names
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Each runs fn over every body in catalog order under the read lock.
// fn must not mutate the bodies.
func (r *Registry) Each(fn func(*Body)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.order {
		fn(b)
	}
}

// Mutate runs fn over every body under the write lock. The frame
// stepper uses this so angle advances never interleave with edits.
func (r *Registry) Mutate(fn func(*Body)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.order {
		fn(b)
	}
}

// Update runs a single-body edit transaction under the write lock.
// If fn returns an error the body may have been partially written;
// callers that need atomicity validate before calling (see panel).
func (r *Registry) Update(name string, fn func(*Body) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBody, name)
	}
	return fn(b)
}

// View reads a single body under the read lock. fn must not mutate.
func (r *Registry) View(name string, fn func(*Body)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBody, name)
	}
	fn(b)
	return nil
}

// Select highlights exactly the named body, clearing the flag on all
// others. At most one body is highlighted at any time.
func (r *Registry) Select(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sel, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBody, name)
	}
	for _, b := range r.order {
		b.Highlighted = false
	}
	sel.Highlighted = true
	return nil
}

// ClearHighlights drops the highlight flag on every body.
func (r *Registry) ClearHighlights() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.order {
		b.Highlighted = false
	}
}

// Highlighted returns the name of the highlighted body, or "" if none.
func (r *Registry) Highlighted() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.order {
		if b.Highlighted {
			return b.Name
		}
	}
	return ""
}
