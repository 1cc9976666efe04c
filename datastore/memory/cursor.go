/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"math"

	"github.com/suparena/recordstore/datastore"
)

// cursor carries the lower bound of the next batch between calls. It holds no
// lock between batches, so writes made by other callers in the meantime are
// visible to later batches.
type cursor[T any] struct {
	gate     *Gate[T]
	pageSize int
	next     datastore.ID
	batch    datastore.Batch[T]
	done     bool
	err      error
}

func (c *cursor[T]) Next(ctx context.Context) bool {
	c.batch = nil
	if c.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		c.err = err
		c.done = true
		return false
	}

	batch := c.gate.readBatch(ctx, c.next, c.pageSize)
	if len(batch) == 0 {
		c.done = true
		return false
	}

	last := batch[len(batch)-1].ID
	if len(batch) < c.pageSize || last == math.MaxUint64 {
		c.done = true
	} else {
		c.next = last + 1
	}
	c.batch = batch
	return true
}

func (c *cursor[T]) Batch() datastore.Batch[T] {
	return c.batch
}

func (c *cursor[T]) Err() error {
	return c.err
}
