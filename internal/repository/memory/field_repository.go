// Package memory holds the session-scoped field collection. Fields live only
// for the lifetime of the process; there is no durability contract.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// ErrFieldNotFound reports a lookup for a field name that was never registered.
var ErrFieldNotFound = errors.New("field not found")

// ErrFieldExists reports an attempt to register a duplicate field name.
var ErrFieldExists = errors.New("field already exists")

// Repository defines the field storage operations the engine needs.
type Repository interface {
	List() []models.Field
	Get(name string) (models.Field, error)
	Add(field models.Field) error
	Update(name string, mutate func(*models.Field)) error
}

// FieldRepository is an ordered, mutex-guarded in-memory Repository.
type FieldRepository struct {
	mu     sync.Mutex
	fields []models.Field
	index  map[string]int
}

// NewFieldRepository creates an empty repository.
func NewFieldRepository() *FieldRepository {
	return &FieldRepository{index: make(map[string]int)}
}

// List returns a copy of all fields in insertion order.
func (r *FieldRepository) List() []models.Field {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the field with the given name.
func (r *FieldRepository) Get(name string) (models.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return models.Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return r.fields[i], nil
}

// Add registers a new field. Names are unique identifiers.
func (r *FieldRepository) Add(field models.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[field.Name]; ok {
		return fmt.Errorf("%w: %q", ErrFieldExists, field.Name)
	}
	r.index[field.Name] = len(r.fields)
	r.fields = append(r.fields, field)
	return nil
}

// Update applies mutate to the stored field under the lock. All engine-side
// field mutation (decay ticks, irrigation events) goes through here.
func (r *FieldRepository) Update(name string, mutate func(*models.Field)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	mutate(&r.fields[i])
	return nil
}
