/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"github.com/google/btree"

	"github.com/suparena/recordstore/datastore"
)

const btreeDegree = 32

type item[T any] struct {
	id    datastore.ID
	value T
}

func lessByID[T any](a, b item[T]) bool {
	return a.id < b.id
}

// orderedStore maps IDs to values in ascending ID order. It is not safe for
// concurrent use; the gate's mutex guards it.
type orderedStore[T any] struct {
	tree *btree.BTreeG[item[T]]
}

func newOrderedStore[T any]() *orderedStore[T] {
	return &orderedStore[T]{tree: btree.NewG[item[T]](btreeDegree, lessByID[T])}
}

func (s *orderedStore[T]) get(id datastore.ID) (T, bool) {
	it, ok := s.tree.Get(item[T]{id: id})
	return it.value, ok
}

// put inserts or replaces the value at id and returns the value it replaced.
func (s *orderedStore[T]) put(id datastore.ID, value T) (T, bool) {
	prev, replaced := s.tree.ReplaceOrInsert(item[T]{id: id, value: value})
	return prev.value, replaced
}

func (s *orderedStore[T]) remove(id datastore.ID) (T, bool) {
	it, ok := s.tree.Delete(item[T]{id: id})
	return it.value, ok
}

func (s *orderedStore[T]) len() int {
	return s.tree.Len()
}

// rangeFrom returns up to limit entries with ID >= lower, in ascending order.
func (s *orderedStore[T]) rangeFrom(lower datastore.ID, limit int) datastore.Batch[T] {
	batch := make(datastore.Batch[T], 0, min(limit, s.tree.Len()))
	s.tree.AscendGreaterOrEqual(item[T]{id: lower}, func(it item[T]) bool {
		batch = append(batch, datastore.Entry[T]{ID: it.id, Value: it.value})
		return len(batch) < limit
	})
	return batch
}

// each visits every entry in ascending order until fn returns false.
func (s *orderedStore[T]) each(fn func(datastore.ID, T) bool) {
	s.tree.Ascend(func(it item[T]) bool {
		return fn(it.id, it.value)
	})
}
