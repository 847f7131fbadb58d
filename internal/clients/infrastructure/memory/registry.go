package memory

import (
	"sync"

	clients "ispdesk/internal/clients/domain"
)

// ClientRegistry is the ordered in-memory collection of clients, the only
// process-wide state. Insertion order is preserved and clients are
// addressed by list position. A single lock is held for the duration of
// each mutation or snapshot pass, so a statistics recomputation never
// interleaves with a mutation.
type ClientRegistry struct {
	mu      sync.RWMutex
	clients []*clients.Client
}

// NewClientRegistry constructs an empty registry.
func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{}
}

// Add appends a client and returns its position.
func (r *ClientRegistry) Add(c *clients.Client) (int, error) {
	if c == nil {
		return 0, clients.ErrNilClient
	}
	r.mu.Lock()
	r.clients = append(r.clients, c)
	index := len(r.clients) - 1
	r.mu.Unlock()
	return index, nil
}

// RemoveAt removes and returns the client at a position. On a bad index
// the registry is left unchanged.
func (r *ClientRegistry) RemoveAt(index int) (*clients.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.clients) {
		return nil, clients.ErrIndexOutOfRange
	}
	removed := r.clients[index]
	r.clients = append(r.clients[:index], r.clients[index+1:]...)
	return removed, nil
}

// Get returns a detached copy of the client at a position.
func (r *ClientRegistry) Get(index int) (*clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.clients) {
		return nil, clients.ErrIndexOutOfRange
	}
	return r.clients[index].Clone(), nil
}

// Len returns the number of registered clients.
func (r *ClientRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// List returns detached copies of all clients in insertion order.
func (r *ClientRegistry) List() []*clients.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*clients.Client, len(r.clients))
	for i, c := range r.clients {
		out[i] = c.Clone()
	}
	return out
}

// Update runs fn against the live client at a position under the write
// lock. fn must validate before mutating so a failed update leaves the
// client unchanged.
func (r *ClientRegistry) Update(index int, fn func(*clients.Client) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.clients) {
		return clients.ErrIndexOutOfRange
	}
	return fn(r.clients[index])
}

// UpdateAll runs fn against every live client under one write lock pass.
// The first error stops the pass.
func (r *ClientRegistry) UpdateAll(fn func(index int, c *clients.Client) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if err := fn(i, c); err != nil {
			return err
		}
	}
	return nil
}
