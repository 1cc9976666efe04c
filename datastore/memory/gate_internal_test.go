/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
)

type pair struct {
	Key string
	Val int
}

func pairKey(p pair) string { return p.Key }

func requireInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.IsInvariant(err), "unexpected panic: %v", err)
	}()
	fn()
}

func TestDeletePanicsOnDivergedIndex(t *testing.T) {
	ctx := context.Background()
	g := NewWithKey(pairKey)
	id, err := g.Add(ctx, pair{Key: "k", Val: 1})
	require.NoError(t, err)

	g.byKey["k"] = id + 10

	requireInvariantPanic(t, func() { _, _ = g.Delete(ctx, id) })

	// Nothing was removed, and the lock was released on the panic path.
	assert.Equal(t, 1, g.Size())
}

func TestUpdatePanicsOnDivergedIndex(t *testing.T) {
	ctx := context.Background()
	g := NewWithKey(pairKey)
	id, err := g.Add(ctx, pair{Key: "k"})
	require.NoError(t, err)

	delete(g.byKey, "k")

	requireInvariantPanic(t, func() {
		_, _ = g.Update(ctx, datastore.Entry[pair]{ID: id, Value: pair{Key: "other"}})
	})
}

func TestInvariantChecks(t *testing.T) {
	ctx := context.Background()
	g := NewWithKey(pairKey, WithInvariantChecks(true))
	_, err := g.Add(ctx, pair{Key: "a"})
	require.NoError(t, err)
	require.NoError(t, g.CheckInvariants())

	g.byKey["stray"] = 99
	assert.True(t, errors.IsInvariant(g.CheckInvariants()))

	requireInvariantPanic(t, func() { _, _ = g.Add(ctx, pair{Key: "b"}) })
}

func TestCheckInvariantsDetectsMisdirectedKey(t *testing.T) {
	ctx := context.Background()
	g := NewWithKey(pairKey)
	a, err := g.Add(ctx, pair{Key: "a"})
	require.NoError(t, err)
	_, err = g.Add(ctx, pair{Key: "b"})
	require.NoError(t, err)

	g.byKey["a"] = a + 1
	err = g.CheckInvariants()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "a" indexed to 1`)
}

func TestOrderedStoreRange(t *testing.T) {
	s := newOrderedStore[string]()
	for _, id := range []datastore.ID{5, 1, 9, 3, 7} {
		s.put(id, "v")
	}

	ids := func(b datastore.Batch[string]) []datastore.ID {
		out := make([]datastore.ID, len(b))
		for i, e := range b {
			out[i] = e.ID
		}
		return out
	}

	assert.Equal(t, []datastore.ID{1, 3, 5, 7, 9}, ids(s.rangeFrom(0, 10)))
	assert.Equal(t, []datastore.ID{3, 5}, ids(s.rangeFrom(2, 2)))
	assert.Equal(t, []datastore.ID{9}, ids(s.rangeFrom(8, 2)))
	assert.Empty(t, s.rangeFrom(10, 2))

	prev, replaced := s.put(5, "w")
	assert.True(t, replaced)
	assert.Equal(t, "v", prev)

	_, ok := s.remove(4)
	assert.False(t, ok)
	_, ok = s.remove(5)
	assert.True(t, ok)
	assert.Equal(t, 4, s.len())
}
