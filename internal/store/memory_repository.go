package store

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/hbnb/hbnb-server/internal/logger"
)

// memoryRepository is the process-lifetime implementation of [Repository].
//
// Entities live in a map keyed by id; order keeps insertion order so that
// GetAll is deterministic. Every read-modify-write happens under mu, and the
// configured unique attributes are checked under the same lock, so two
// concurrent requests cannot both insert the same email. Entities are cloned
// on the way in and out: callers never share memory with the store.
type memoryRepository[T Entity[T]] struct {
	mu     sync.RWMutex
	items  map[string]T
	order  []string
	unique []string
	blank  T

	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryRepository constructs an empty in-memory [Repository].
// uniqueAttributes name the attributes that must not repeat across entities.
func NewMemoryRepository[T Entity[T]](ids IDGenerator, log *logger.Logger, uniqueAttributes ...string) Repository[T] {
	log.Debug().Strs("unique", uniqueAttributes).Msg("creating memory repository")
	return &memoryRepository[T]{
		items:  make(map[string]T),
		order:  make([]string, 0, 64),
		unique: uniqueAttributes,
		blank:  newBlank[T](),
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (r *memoryRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	log := r.logger.Ctx(ctx)
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := entity.Clone()
	if stored.GetID() == "" {
		stored.SetID(r.ids.Generate())
	}

	if _, exists := r.items[stored.GetID()]; exists {
		log.Warn().Str("func", "memoryRepository.Add").Str("id", stored.GetID()).Msg("id already exists")
		return zero, fmt.Errorf("%w: id %s", ErrConflict, stored.GetID())
	}
	if err := r.checkUnique(stored); err != nil {
		log.Warn().Err(err).Str("func", "memoryRepository.Add").Msg("unique attribute taken")
		return zero, err
	}

	stored.Stamp(r.now())
	r.items[stored.GetID()] = stored
	r.order = append(r.order, stored.GetID())

	return stored.Clone(), nil
}

func (r *memoryRepository[T]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return entity.Clone(), nil
}

func (r *memoryRepository[T]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id].Clone())
	}
	return result, nil
}

func (r *memoryRepository[T]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	log := r.logger.Ctx(ctx)
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return zero, ErrNotFound
	}

	next := stored.Clone()
	if err := patch.Apply(next); err != nil {
		log.Debug().Err(err).Str("func", "memoryRepository.Update").Str("id", id).Msg("patch rejected")
		return zero, err
	}
	next.SetID(id)

	if err := r.checkUnique(next); err != nil {
		log.Warn().Err(err).Str("func", "memoryRepository.Update").Str("id", id).Msg("unique attribute taken")
		return zero, err
	}

	next.Stamp(r.now())
	r.items[id] = next

	return next.Clone(), nil
}

func (r *memoryRepository[T]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}

	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })

	return true, nil
}

func (r *memoryRepository[T]) GetByAttribute(_ context.Context, name string, value any) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	if err := r.knownAttribute(name); err != nil {
		return zero, err
	}

	for _, id := range r.order {
		entity := r.items[id]
		if attr, _ := entity.Attribute(name); attr == value {
			return entity.Clone(), nil
		}
	}

	return zero, ErrNotFound
}

func (r *memoryRepository[T]) ListByAttribute(_ context.Context, name string, value any) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.knownAttribute(name); err != nil {
		return nil, err
	}

	result := make([]T, 0)
	for _, id := range r.order {
		entity := r.items[id]
		if attr, _ := entity.Attribute(name); attr == value {
			result = append(result, entity.Clone())
		}
	}

	return result, nil
}

// knownAttribute reports ErrUnknownAttribute for names T does not expose,
// whether or not the repository holds any entity.
func (r *memoryRepository[T]) knownAttribute(name string) error {
	if _, ok := r.blank.Attribute(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	return nil
}

// newBlank returns a zero-valued entity. Entities are pointer types, so the
// zero T is nil and cannot answer Attribute.
func newBlank[T Entity[T]]() T {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return zero
	}
	return reflect.New(typ.Elem()).Interface().(T)
}

// checkUnique must be called with mu held for writing.
func (r *memoryRepository[T]) checkUnique(candidate T) error {
	for _, name := range r.unique {
		value, ok := candidate.Attribute(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
		for id, other := range r.items {
			if id == candidate.GetID() {
				continue
			}
			if otherValue, _ := other.Attribute(name); otherValue == value {
				return fmt.Errorf("%w: %s", ErrConflict, name)
			}
		}
	}
	return nil
}
