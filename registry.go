package lametta

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry is a write-once-per-id table mapping schema ids to descriptors.
// Register calls are serialized so that competing registrations of the same
// id are rejected deterministically; after the registration phase the table
// is effectively read-only and Resolve takes only a read lock.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*TypeDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*TypeDescriptor)}
}

// Register binds id to td. It fails with SchemaCodeDuplicate when id is
// already taken (the earlier registration stays intact) and with
// SchemaCodeInconsistentUnion when any union nested in td violates the
// variant consistency rules of CheckUnions.
func (r *Registry) Register(id string, td *TypeDescriptor) error {
	if id == "" {
		return &SchemaError{SchemaID: id, Code: SchemaCodeDuplicate, Message: "empty schema id"}
	}
	if td == nil {
		return &SchemaError{SchemaID: id, Code: SchemaCodeInconsistentUnion, Message: "nil descriptor"}
	}
	if err := CheckUnions(td); err != nil {
		return &SchemaError{SchemaID: id, Code: SchemaCodeInconsistentUnion, Message: err.Error()}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[id]; exists {
		return &SchemaError{SchemaID: id, Code: SchemaCodeDuplicate, Message: "schema id already registered"}
	}
	r.schemas[id] = td
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id string, td *TypeDescriptor) {
	if err := r.Register(id, td); err != nil {
		panic(err)
	}
}

// Resolve returns the descriptor registered under id.
func (r *Registry) Resolve(id string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	td, ok := r.schemas[id]
	return td, ok
}

// IDs returns the registered schema ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate resolves id and validates v against it. Unknown ids surface as a
// single parse_error issue so callers see one error shape for bad input and
// bad id alike.
func (r *Registry) Validate(ctx context.Context, id string, v any, opts ...ParseOpt) (Value, error) {
	td, ok := r.Resolve(id)
	if !ok {
		return Value{}, Issues{Issue{Code: CodeParseError, Message: fmt.Sprintf("unknown schema %q", id)}}
	}
	return Validate(ctx, td, v, opts...)
}

// defaultRegistry backs the package-level conveniences. Libraries that need
// isolation should construct their own Registry.
var defaultRegistry = NewRegistry()

// Register registers td under id in the process-wide default registry.
func Register(id string, td *TypeDescriptor) error { return defaultRegistry.Register(id, td) }

// MustRegister is like Register but panics on error.
func MustRegister(id string, td *TypeDescriptor) { defaultRegistry.MustRegister(id, td) }

// Resolve looks up id in the default registry.
func Resolve(id string) (*TypeDescriptor, bool) { return defaultRegistry.Resolve(id) }

// IDs lists the default registry's schema ids in sorted order.
func IDs() []string { return defaultRegistry.IDs() }
