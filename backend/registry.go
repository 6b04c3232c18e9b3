// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"sort"
	"sync"

	"github.com/gogpu/glview"
)

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered context backends.
//
// The registry lets backend packages register themselves from init()
// without the core library importing them. Typical registration:
//
//	func init() {
//	    backend.Register("opengl", 100, newContext, glAvailable)
//	}
//
// Typical usage:
//
//	ctx, err := backend.NewByName("opengl", 1280, 720)
//	// or auto-select best available:
//	ctx, err := backend.New(1280, 720)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds a backend to the global registry.
//
// Parameters:
//   - name: unique identifier (e.g., "opengl", "null")
//   - priority: selection priority (higher = preferred)
//   - factory: function to create context instances
//   - available: function to check if the backend is usable
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all usable backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*Entry, bool) {
	return globalRegistry.Get(name)
}

// New creates a context using the best available backend.
// Returns an error if no backends are available.
func New(width, height int) (glview.Context, error) {
	return globalRegistry.New(Options{Width: width, Height: height})
}

// NewWithOptions creates a context using the best available backend.
func NewWithOptions(opts Options) (glview.Context, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a context using a specific named backend.
func NewByName(name string, width, height int) (glview.Context, error) {
	return globalRegistry.NewByName(name, Options{Width: width, Height: height})
}

// NewByNameWithOptions creates a context using a specific backend.
func NewByNameWithOptions(name string, opts Options) (glview.Context, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all usable backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a context using the best available backend.
func (r *Registry) New(opts Options) (glview.Context, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	// Try each usable backend in priority order
	var lastErr error
	for _, name := range available {
		ctx, err := r.NewByName(name, opts)
		if err == nil {
			glview.Logger().Info("context created", "backend", name,
				"width", opts.Width, "height", opts.Height)
			return ctx, nil
		}
		glview.Logger().Warn("backend failed, trying next", "backend", name, "error", err)
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewByName creates a context using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (glview.Context, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to usable backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// init registers the built-in null backend.
func init() {
	Register(BackendNull, 10, func(opts Options) (glview.Context, error) {
		return glview.NullContext(opts.Width, opts.Height), nil
	}, nil)
}
