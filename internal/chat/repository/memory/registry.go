// Package memory keeps the group-to-class registry in process memory.
// The dashboard stays the source of truth; this is a warm cache so the
// worker can attach a class hint to every routed message.
package memory

import (
	"context"
	"sync"
)

type implRegistry struct {
	mu      sync.RWMutex
	classes map[string]string
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *implRegistry {
	return &implRegistry{
		classes: make(map[string]string),
	}
}

// FindClassID returns the class linked to the group. Unknown groups
// return the zero value and no error.
func (r *implRegistry) FindClassID(_ context.Context, groupJID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classes[groupJID], nil
}

// UpsertClassID links the group to a class, replacing any earlier link.
func (r *implRegistry) UpsertClassID(_ context.Context, groupJID, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[groupJID] = classID
	return nil
}
