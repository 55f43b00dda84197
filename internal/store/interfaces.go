package store

import (
	"context"
	"time"
)

// Entity is the contract every stored record satisfies. T is the pointer
// type of the record itself (e.g. *models.User), so Clone can return a
// detached copy of the concrete type.
type Entity[T any] interface {
	// GetID returns the opaque identifier, or "" if not yet assigned.
	GetID() string
	// SetID assigns the identifier.
	SetID(id string)
	// Stamp records a write at the given moment.
	Stamp(now time.Time)
	// Attribute returns the value of a queryable column by name.
	Attribute(name string) (any, bool)
	// Clone returns a deep copy that shares no mutable state.
	Clone() T
}

// Patch is a partial update of an entity. Apply merges the provided fields
// into entity and re-validates them; on error entity must be left unchanged.
type Patch[T any] interface {
	Apply(entity T) error
}

// Repository is the keyed storage contract shared by the in-memory and the
// relational implementations. Any implementation is interchangeable without
// changes to the service layer.
type Repository[T Entity[T]] interface {
	// Add assigns an id if unset, stamps timestamps and stores the entity.
	// Returns [ErrConflict] if the id or a unique attribute is taken.
	Add(ctx context.Context, entity T) (T, error)

	// Get returns the entity stored under id or [ErrNotFound].
	Get(ctx context.Context, id string) (T, error)

	// GetAll returns a snapshot of every entity in creation order.
	GetAll(ctx context.Context) ([]T, error)

	// Update applies patch to the stored entity and returns the result, or
	// [ErrNotFound], a validation error from the patch, or [ErrConflict].
	Update(ctx context.Context, id string, patch Patch[T]) (T, error)

	// Delete removes the entity and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// GetByAttribute returns the first entity whose attribute equals value,
	// or [ErrNotFound].
	GetByAttribute(ctx context.Context, name string, value any) (T, error)

	// ListByAttribute returns every entity whose attribute equals value.
	ListByAttribute(ctx context.Context, name string, value any) ([]T, error)
}

// IDGenerator produces identifiers for entities added without one.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator maps driver specific errors to a [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
