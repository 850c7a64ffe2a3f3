// Package cache holds the in-memory entity collections that back every list
// shown to callers. A collection is the single source of truth between full
// reloads: authoritative records arrive via ReplaceAll, optimistic records
// via InsertProvisional and are later resolved or dropped by identifier,
// never by position.
package cache

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// provisionalPrefix marks identifiers assigned locally before the remote
// collaborator has confirmed a create. Server-assigned identifiers never
// carry it.
const provisionalPrefix = "pending-"

// NewProvisionalID returns a locally-unique identifier distinct from any
// server-assigned one.
func NewProvisionalID() string {
	return provisionalPrefix + uuid.NewString()
}

// IsProvisionalID reports whether id was assigned locally.
func IsProvisionalID(id string) bool {
	return strings.HasPrefix(id, provisionalPrefix)
}

// Collection is an ordered, id-keyed, concurrency-safe set of entities.
type Collection[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) string
	order []string
	items map[string]T
}

// NewCollection creates an empty collection keyed by idOf.
func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{
		idOf:  idOf,
		items: make(map[string]T),
	}
}

// ReplaceAll swaps in an authoritative listing. Unresolved provisional
// entries survive the swap: a refresh racing a pending create must not erase
// the optimistic record, so reconciliation is by identifier rather than by
// index.
func (c *Collection[T]) ReplaceAll(list []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pending []string
	for _, id := range c.order {
		if IsProvisionalID(id) {
			pending = append(pending, id)
		}
	}

	items := make(map[string]T, len(list)+len(pending))
	order := make([]string, 0, len(list)+len(pending))
	for _, item := range list {
		id := c.idOf(item)
		if _, dup := items[id]; dup {
			continue
		}
		items[id] = item
		order = append(order, id)
	}
	for _, id := range pending {
		items[id] = c.items[id]
		order = append(order, id)
	}

	c.items = items
	c.order = order
}

// InsertProvisional appends an optimistic record and returns its provisional
// identifier. The entity's own identifier field is ignored; callers stamp the
// returned id onto the record they display.
func (c *Collection[T]) InsertProvisional(item T) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := NewProvisionalID()
	c.items[id] = item
	c.order = append(c.order, id)
	return id
}

// Resolve replaces the provisional record with the authoritative one returned
// by the remote collaborator, keeping its position. When a refresh already
// delivered the record under its server id, the provisional entry is simply
// dropped so the id never appears twice in the order.
func (c *Collection[T]) Resolve(provisionalID string, authoritative T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[provisionalID]; !ok {
		return false
	}
	newID := c.idOf(authoritative)
	if _, present := c.items[newID]; present {
		delete(c.items, provisionalID)
		c.items[newID] = authoritative
		for i, id := range c.order {
			if id == provisionalID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return true
	}
	delete(c.items, provisionalID)
	c.items[newID] = authoritative
	for i, id := range c.order {
		if id == provisionalID {
			c.order[i] = newID
			break
		}
	}
	return true
}

// Drop removes a provisional record after a failed create, restoring the
// collection to its pre-insert state.
func (c *Collection[T]) Drop(provisionalID string) bool {
	return c.remove(provisionalID)
}

// Remove deletes an entity by identifier.
func (c *Collection[T]) Remove(id string) bool {
	return c.remove(id)
}

func (c *Collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Upsert inserts or replaces an entity under its own identifier.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// Get returns the entity stored under id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// List returns a fresh ordered slice of all entities.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
