package jgd

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// CustomKeyFunc generates the value of a user-registered pattern. It receives
// the arguments written in the placeholder, e.g. ${shop.sku(3)}.
type CustomKeyFunc func(args Arguments) (any, error)

// Registry maps pattern names to user-supplied generators. It is safe for
// concurrent use; generation runs work on a Snapshot so registrations made
// while a run is in flight do not affect it.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]CustomKeyFunc
}

// DefaultRegistry is the process-wide registry used by Register and by
// generation runs that are not given a registry explicitly.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]CustomKeyFunc)}
}

// Register adds or replaces the generator for pattern.
func (r *Registry) Register(pattern string, fn CustomKeyFunc) error {
	if pattern == "" {
		return errors.New("jgd: custom key pattern cannot be empty")
	}
	if fn == nil {
		return errors.New("jgd: custom key function cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[pattern] = fn
	return nil
}

// Unregister removes pattern. It reports whether the pattern was registered.
func (r *Registry) Unregister(pattern string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.keys[pattern]
	delete(r.keys, pattern)
	return ok
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.keys)
}

// Lookup returns the generator registered for pattern.
func (r *Registry) Lookup(pattern string) (CustomKeyFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.keys[pattern]
	return fn, ok
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// Keys returns the registered pattern names, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.keys))
}

// Snapshot returns a copy of the current registrations.
func (r *Registry) Snapshot() map[string]CustomKeyFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.keys)
}

// Register adds fn to DefaultRegistry.
func Register(pattern string, fn CustomKeyFunc) error {
	return DefaultRegistry.Register(pattern, fn)
}

// Unregister removes pattern from DefaultRegistry.
func Unregister(pattern string) bool {
	return DefaultRegistry.Unregister(pattern)
}
