/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/recordstore/storagemodels"
)

// ID is a store-assigned record identifier. IDs increase monotonically and are
// never reused within a store's lifetime.
type ID uint64

// Entry pairs a stored value with its identifier.
type Entry[T any] struct {
	ID    ID
	Value T
}

// Batch is one page of entries in ascending ID order.
type Batch[T any] []Entry[T]

// Gate is the access surface over an ordered, uniquely-keyed record store.
// Every method is safe for concurrent use.
type Gate[T any] interface {
	// Get retrieves the entry stored under id
	Get(ctx context.Context, id ID) (Entry[T], error)

	// Add stores value under a newly assigned ID
	Add(ctx context.Context, value T) (ID, error)

	// Update replaces the value of an existing entry and returns the previous one
	Update(ctx context.Context, entry Entry[T]) (T, error)

	// Delete removes an entry by ID and returns its value
	Delete(ctx context.Context, id ID) (T, error)

	// Iterate returns a cursor over all entries, pageSize at a time
	Iterate(pageSize int) Cursor[T]

	// Stream emits all entries one by one on a channel
	Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[Entry[T]]

	// Size returns the number of stored entries
	Size() int
}

// Cursor walks a Gate page by page in ascending ID order.
//
// Each call to Next reads one batch atomically; nothing is held between calls,
// so the walk is weakly consistent: records added past the cursor show up in
// later batches and records deleted ahead of it are skipped.
//
//	cur := gate.Iterate(25)
//	for cur.Next(ctx) {
//	    for _, e := range cur.Batch() { ... }
//	}
//	if err := cur.Err(); err != nil { ... }
type Cursor[T any] interface {
	// Next reads the next batch. It returns false once the store is exhausted
	// or ctx is done.
	Next(ctx context.Context) bool
	// Batch returns the batch read by the last successful Next.
	Batch() Batch[T]
	// Err returns the error that stopped iteration early, if any.
	Err() error
}
