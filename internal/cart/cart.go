// Package cart maintains the working set of selected items for a session.
package cart

import (
	"sync"

	"prato/internal/model"
)

// Cart is an insertion-ordered set of cart entries keyed by item id.
// Duplicate checks are O(1) via the index; display order is insertion
// order. Safe for concurrent use.
type Cart struct {
	mu        sync.Mutex
	entries   []model.CartEntry
	index     map[string]struct{}
	panelOpen bool
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]struct{})}
}

// Add appends entry unless an entry with the same item id is already
// present. It returns false, leaving the cart unchanged, on a duplicate.
// A successful add opens the cart panel.
func (c *Cart) Add(entry model.CartEntry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[entry.ItemID]; exists {
		return false
	}

	c.entries = append(c.entries, entry)
	c.index[entry.ItemID] = struct{}{}
	c.panelOpen = true
	return true
}

// Remove deletes the entry with the given item id. Removing an absent id
// is a no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[itemID]; !exists {
		return
	}

	delete(c.index, itemID)
	for i, e := range c.entries {
		if e.ItemID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
}

// Clear empties the cart and closes the panel. Called only after a
// confirmed successful submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.index = make(map[string]struct{})
	c.panelOpen = false
}

// Entries returns a copy of the cart contents in insertion order.
func (c *Cart) Entries() []model.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// PanelOpen reports whether the cart panel is open.
func (c *Cart) PanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// ClosePanel closes the cart panel without touching the contents.
func (c *Cart) ClosePanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panelOpen = false
}
