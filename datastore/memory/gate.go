/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/observability"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

var _ datastore.Gate[struct{}] = (*Gate[struct{}])(nil)

// Validator is implemented by values that can check their own required fields.
// The gate rejects values whose Validate returns an error before taking its lock.
type Validator interface {
	Validate() error
}

// Gate is an in-memory datastore.Gate. A single mutex guards the ordered
// entries, the natural key index and the ID counter; every operation holds it
// for its whole duration, except iteration which holds it once per batch.
type Gate[T any] struct {
	mu      sync.Mutex
	entries *orderedStore[T]
	byKey   uniqueIndex
	nextID  datastore.ID
	// exhausted is set once math.MaxUint64 has been assigned.
	exhausted bool

	keyOf    registry.KeyFunc[T]
	typeName string
	pages    storagemodels.PageSizeConfig
	observer observability.Observer
	verify   bool
}

// Option configures a Gate.
type Option func(*options)

type options struct {
	startID  datastore.ID
	typeName string
	pages    storagemodels.PageSizeConfig
	observer observability.Observer
	verify   bool
}

// WithStartID sets the first ID the gate assigns. Default 0.
func WithStartID(id datastore.ID) Option {
	return func(o *options) {
		o.startID = id
	}
}

// WithTypeName sets the entity name used in error messages.
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// WithPageSizeConfig sets the default and maximum iteration page sizes.
func WithPageSizeConfig(cfg storagemodels.PageSizeConfig) Option {
	return func(o *options) {
		o.pages = cfg
	}
}

// WithObserver sets the observer notified after every operation.
func WithObserver(observer observability.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithInvariantChecks makes the gate verify both indexes after every mutation
// and panic with an *errors.InvariantError if they disagree. It costs O(n) per
// write and is meant for tests and debugging.
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) {
		o.verify = enabled
	}
}

// New creates a Gate for T using the natural key function registered for T.
func New[T any](opts ...Option) (*Gate[T], error) {
	keyOf, ok := registry.GetNaturalKey[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T", errors.ErrNoNaturalKey, zero)
	}
	return NewWithKey(keyOf, opts...), nil
}

// NewWithKey creates a Gate for T that derives natural keys with keyOf.
func NewWithKey[T any](keyOf registry.KeyFunc[T], opts ...Option) *Gate[T] {
	var zero T
	o := options{
		typeName: fmt.Sprintf("%T", zero),
		pages:    storagemodels.DefaultPageSizeConfig(),
		observer: observability.NoopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = observability.NoopObserver{}
	}

	return &Gate[T]{
		entries:  newOrderedStore[T](),
		byKey:    make(uniqueIndex),
		nextID:   o.startID,
		keyOf:    keyOf,
		typeName: o.typeName,
		pages:    o.pages,
		observer: o.observer,
		verify:   o.verify,
	}
}

// Get returns the entry stored under id.
func (g *Gate[T]) Get(ctx context.Context, id datastore.ID) (entry datastore.Entry[T], err error) {
	defer g.observe(ctx, observability.OpGet, time.Now(), &id, &err)

	g.mu.Lock()
	defer g.mu.Unlock()

	value, ok := g.entries.get(id)
	if !ok {
		return datastore.Entry[T]{}, g.notFound(id)
	}
	return datastore.Entry[T]{ID: id, Value: value}, nil
}

// Add stores value under a new ID. It fails with errors.ErrAlreadyExists if
// another entry has the same natural key, and with errors.ErrIDsExhausted once
// the largest ID has been handed out. A rejected add does not consume an ID.
func (g *Gate[T]) Add(ctx context.Context, value T) (id datastore.ID, err error) {
	defer g.observe(ctx, observability.OpAdd, time.Now(), &id, &err)

	if err = validate(value); err != nil {
		return 0, err
	}
	key := g.keyOf(value)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byKey.lookup(key); exists {
		return 0, errors.NewAlreadyExistsError(g.typeName, key)
	}
	if g.exhausted {
		return 0, fmt.Errorf("%w: %s", errors.ErrIDsExhausted, g.typeName)
	}

	id = g.nextID
	g.entries.put(id, value)
	g.byKey.insert(key, id)
	if id == math.MaxUint64 {
		g.exhausted = true
	} else {
		g.nextID++
	}

	g.verifyLocked()
	return id, nil
}

// Update replaces the value stored under entry.ID and returns the previous
// value. It fails with errors.ErrNotFound if the ID is absent, and with
// errors.ErrAlreadyExists if the new natural key belongs to a different ID.
// A failed update changes nothing.
func (g *Gate[T]) Update(ctx context.Context, entry datastore.Entry[T]) (prev T, err error) {
	id := entry.ID
	defer g.observe(ctx, observability.OpUpdate, time.Now(), &id, &err)

	if err = validate(entry.Value); err != nil {
		return prev, err
	}
	newKey := g.keyOf(entry.Value)

	g.mu.Lock()
	defer g.mu.Unlock()

	current, ok := g.entries.get(id)
	if !ok {
		return prev, g.notFound(id)
	}

	oldKey := g.keyOf(current)
	if newKey != oldKey {
		if owner, taken := g.byKey.lookup(newKey); taken && owner != id {
			return prev, errors.NewAlreadyExistsError(g.typeName, newKey)
		}
		if !g.byKey.remove(oldKey, id) {
			panic(errors.NewInvariantError("entry %d has key %q but the index does not map it back", id, oldKey))
		}
		g.byKey.insert(newKey, id)
	}
	g.entries.put(id, entry.Value)

	g.verifyLocked()
	return current, nil
}

// Delete removes the entry stored under id and returns its value.
func (g *Gate[T]) Delete(ctx context.Context, id datastore.ID) (value T, err error) {
	defer g.observe(ctx, observability.OpDelete, time.Now(), &id, &err)

	g.mu.Lock()
	defer g.mu.Unlock()

	value, ok := g.entries.get(id)
	if !ok {
		return value, g.notFound(id)
	}
	key := g.keyOf(value)
	if !g.byKey.remove(key, id) {
		panic(errors.NewInvariantError("entry %d has key %q but the index does not map it back", id, key))
	}
	g.entries.remove(id)

	g.verifyLocked()
	return value, nil
}

// Size returns the number of stored entries.
func (g *Gate[T]) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.entries.len()
}

// Iterate returns a cursor over all entries in ascending ID order, pageSize
// entries at a time. A pageSize of zero or less selects the configured default.
func (g *Gate[T]) Iterate(pageSize int) datastore.Cursor[T] {
	return &cursor[T]{
		gate:     g,
		pageSize: g.pages.Clamp(pageSize),
	}
}

// CheckInvariants reports whether the natural key index is exactly the
// inverse of the entries. It returns an *errors.InvariantError describing the
// first mismatch found.
func (g *Gate[T]) CheckInvariants() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checkLocked()
}

// readBatch reads up to limit entries with ID >= lower under the lock.
func (g *Gate[T]) readBatch(ctx context.Context, lower datastore.ID, limit int) datastore.Batch[T] {
	start := time.Now()

	g.mu.Lock()
	batch := g.entries.rangeFrom(lower, limit)
	g.mu.Unlock()

	g.observer.OnOperation(ctx, observability.Event{
		Op:       observability.OpIterate,
		Count:    len(batch),
		Duration: time.Since(start),
	})
	return batch
}

func (g *Gate[T]) checkLocked() error {
	if n, m := g.entries.len(), len(g.byKey); n != m {
		return errors.NewInvariantError("%d entries but %d index keys", n, m)
	}
	var err error
	g.entries.each(func(id datastore.ID, value T) bool {
		key := g.keyOf(value)
		owner, ok := g.byKey.lookup(key)
		switch {
		case !ok:
			err = errors.NewInvariantError("entry %d key %q missing from index", id, key)
		case owner != id:
			err = errors.NewInvariantError("entry %d key %q indexed to %d", id, key, owner)
		}
		return err == nil
	})
	return err
}

func (g *Gate[T]) verifyLocked() {
	if !g.verify {
		return
	}
	if err := g.checkLocked(); err != nil {
		panic(err)
	}
}

func (g *Gate[T]) notFound(id datastore.ID) error {
	return errors.NewNotFoundError(g.typeName, strconv.FormatUint(uint64(id), 10))
}

// observe is deferred before the lock is taken so the observer runs after unlock.
func (g *Gate[T]) observe(ctx context.Context, op observability.Op, start time.Time, id *datastore.ID, err *error) {
	g.observer.OnOperation(ctx, observability.Event{
		Op:       op,
		ID:       *id,
		Duration: time.Since(start),
		Err:      *err,
	})
}

func validate(value any) error {
	if v, ok := value.(Validator); ok {
		return v.Validate()
	}
	return nil
}
