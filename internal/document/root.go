package document

import (
	"maps"
	"slices"
	"sync"
)

// Root is the document root element. Attributes set here drive
// theme-dependent styling for the whole page.
type Root struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewRoot creates a root element with no attributes.
func NewRoot() *Root {
	return &Root{attrs: make(map[string]string)}
}

// Attribute returns the value of the named attribute and whether it is set.
func (r *Root) Attribute(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.attrs[name]
	return v, ok
}

// SetAttribute sets the named attribute.
func (r *Root) SetAttribute(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attrs[name] = value
}

// RemoveAttribute unsets the named attribute.
func (r *Root) RemoveAttribute(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attrs, name)
}

// Attributes returns a copy of all attributes.
func (r *Root) Attributes() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.attrs)
}

// AttributeNames returns the set attribute names in sorted order.
func (r *Root) AttributeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.attrs))
}
