package param

import (
	"sync"
)

// Registry holds a plugin's parameters in registration order. The host
// addresses parameters both by ID and by index, so both lookups are
// provided; out-of-range lookups return nil rather than an error.
type Registry struct {
	mu     sync.RWMutex
	params []*Parameter
	byID   map[uint32]*Parameter
}

// NewRegistry creates an empty parameter registry
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uint32]*Parameter),
	}
}

// Add registers parameters; duplicate IDs are skipped
func (r *Registry) Add(params ...*Parameter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.byID[p.ID]; exists {
			continue
		}
		r.byID[p.ID] = p
		r.params = append(r.params, p)
	}
}

// Get retrieves a parameter by ID, nil if unknown
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id]
}

// GetByIndex retrieves a parameter by registration order, nil if out
// of range
func (r *Registry) GetByIndex(index int32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= int32(len(r.params)) {
		return nil
	}

	return r.params[index]
}

// Count returns the number of parameters
func (r *Registry) Count() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int32(len(r.params))
}

// All returns the parameters in registration order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.params))
	copy(result, r.params)
	return result
}
