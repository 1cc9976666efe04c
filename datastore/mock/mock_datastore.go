/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a scriptable implementation of datastore.Gate for testing
package mock

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

var _ datastore.Gate[struct{}] = (*Gate[struct{}])(nil)

// Gate is a mock implementation of datastore.Gate[T] for testing code that
// consumes a gate. It enforces no natural key uniqueness; inject errors with
// the With*Error methods to exercise conflict and failure paths.
type Gate[T any] struct {
	mu          sync.Mutex
	data        map[datastore.ID]T
	nextID      datastore.ID
	getError    error
	addError    error
	updateError error
	deleteError error
	iterError   error
}

// New creates a new mock Gate
func New[T any]() *Gate[T] {
	return &Gate[T]{
		data: make(map[datastore.ID]T),
	}
}

// WithGetError makes Get operations return an error
func (m *Gate[T]) WithGetError(err error) *Gate[T] {
	m.getError = err
	return m
}

// WithAddError makes Add operations return an error
func (m *Gate[T]) WithAddError(err error) *Gate[T] {
	m.addError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *Gate[T]) WithUpdateError(err error) *Gate[T] {
	m.updateError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *Gate[T]) WithDeleteError(err error) *Gate[T] {
	m.deleteError = err
	return m
}

// WithIterateError makes cursors stop after their first batch with err
func (m *Gate[T]) WithIterateError(err error) *Gate[T] {
	m.iterError = err
	return m
}

// Get retrieves an entry by ID
func (m *Gate[T]) Get(ctx context.Context, id datastore.ID) (datastore.Entry[T], error) {
	if m.getError != nil {
		return datastore.Entry[T]{}, m.getError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if value, exists := m.data[id]; exists {
		return datastore.Entry[T]{ID: id, Value: value}, nil
	}
	return datastore.Entry[T]{}, m.notFound(id)
}

// Add stores a value under the next ID
func (m *Gate[T]) Add(ctx context.Context, value T) (datastore.ID, error) {
	if m.addError != nil {
		return 0, m.addError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.data[id] = value
	m.nextID++
	return id, nil
}

// Update replaces the value of an existing entry
func (m *Gate[T]) Update(ctx context.Context, entry datastore.Entry[T]) (T, error) {
	if m.updateError != nil {
		var zero T
		return zero, m.updateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, exists := m.data[entry.ID]
	if !exists {
		return prev, m.notFound(entry.ID)
	}
	m.data[entry.ID] = entry.Value
	return prev, nil
}

// Delete removes an entry by ID
func (m *Gate[T]) Delete(ctx context.Context, id datastore.ID) (T, error) {
	if m.deleteError != nil {
		var zero T
		return zero, m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, exists := m.data[id]
	if !exists {
		return value, m.notFound(id)
	}
	delete(m.data, id)
	return value, nil
}

// Iterate returns a cursor over a snapshot of the data taken now
func (m *Gate[T]) Iterate(pageSize int) datastore.Cursor[T] {
	if pageSize <= 0 {
		pageSize = storagemodels.DefaultPageSize
	}
	return &cursor[T]{entries: m.sorted(), pageSize: pageSize, failWith: m.iterError}
}

// Stream returns a channel of all entries in ID order. If ctx is done first,
// the last result carries ctx.Err().
func (m *Gate[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[datastore.Entry[T]] {
	entries := m.sorted()
	resultChan := make(chan storagemodels.StreamResult[datastore.Entry[T]], len(entries)+1)

	go func() {
		defer close(resultChan)

		for i, e := range entries {
			if err := ctx.Err(); err != nil {
				resultChan <- storagemodels.StreamResult[datastore.Entry[T]]{
					Error: err,
					Meta:  storagemodels.StreamMeta{Index: int64(i), PageNumber: 1},
				}
				return
			}
			select {
			case <-ctx.Done():
				resultChan <- storagemodels.StreamResult[datastore.Entry[T]]{
					Error: ctx.Err(),
					Meta:  storagemodels.StreamMeta{Index: int64(i), PageNumber: 1},
				}
				return
			case resultChan <- storagemodels.StreamResult[datastore.Entry[T]]{
				Item: e,
				Meta: storagemodels.StreamMeta{
					Index:      int64(i),
					PageNumber: 1,
				},
			}:
			}
		}
	}()

	return resultChan
}

// Size returns the number of stored entries
func (m *Gate[T]) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing). The next ID
// continues after the largest key given.
func (m *Gate[T]) SetData(data map[datastore.ID]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.nextID = 0
	for id := range data {
		if id >= m.nextID {
			m.nextID = id + 1
		}
	}
}

// GetData returns a copy of the internal data map (for testing)
func (m *Gate[T]) GetData() map[datastore.ID]T {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[datastore.ID]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Clear removes all data
func (m *Gate[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[datastore.ID]T)
}

func (m *Gate[T]) sorted() datastore.Batch[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(datastore.Batch[T], 0, len(m.data))
	for id, v := range m.data {
		out = append(out, datastore.Entry[T]{ID: id, Value: v})
	}
	slices.SortFunc(out, func(a, b datastore.Entry[T]) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (m *Gate[T]) notFound(id datastore.ID) error {
	var zero T
	return errors.NewNotFoundError(fmt.Sprintf("%T", zero), strconv.FormatUint(uint64(id), 10))
}

type cursor[T any] struct {
	entries  datastore.Batch[T]
	pageSize int
	pos      int
	batch    datastore.Batch[T]
	failWith error
	err      error
}

func (c *cursor[T]) Next(ctx context.Context) bool {
	c.batch = nil
	if c.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		c.err = err
		return false
	}
	if c.pos > 0 && c.failWith != nil {
		c.err = c.failWith
		return false
	}
	if c.pos >= len(c.entries) {
		return false
	}
	end := min(c.pos+c.pageSize, len(c.entries))
	c.batch = c.entries[c.pos:end]
	c.pos = end
	return true
}

func (c *cursor[T]) Batch() datastore.Batch[T] {
	return c.batch
}

func (c *cursor[T]) Err() error {
	return c.err
}
