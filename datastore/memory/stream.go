/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/storagemodels"
)

// Stream emits every entry in ascending ID order on the returned channel. It
// reads through a cursor, so it shares the cursor's weak consistency. The
// channel is closed when the store is exhausted or ctx is done. A stream that
// stops early ends with a result whose Error is set, so callers must drain the
// channel until it is closed.
func (g *Gate[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[datastore.Entry[T]] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[datastore.Entry[T]], max(options.BufferSize, 0))
	go g.streamWorker(ctx, options, resultCh)
	return resultCh
}

func (g *Gate[T]) streamWorker(
	ctx context.Context,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[datastore.Entry[T]],
) {
	defer close(resultCh)

	var (
		index      int64
		pageNumber int
		lastKey    uint64
		startTime  = time.Now()
	)

	reportProgress := func() {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: index,
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(index) / elapsed
		}
		options.ProgressHandler(progress)
	}

	fail := func(err error) {
		resultCh <- storagemodels.StreamResult[datastore.Entry[T]]{
			Error: fmt.Errorf("stream stopped after %d entries: %w", index, err),
			Meta: storagemodels.StreamMeta{
				Index:      index,
				PageNumber: pageNumber,
				Timestamp:  time.Now(),
			},
		}
	}

	cur := g.Iterate(options.PageSize)
	for cur.Next(ctx) {
		pageNumber++
		readAt := time.Now()

		for _, entry := range cur.Batch() {
			result := storagemodels.StreamResult[datastore.Entry[T]]{
				Item: entry,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: pageNumber,
					Timestamp:  readAt,
				},
			}
			select {
			case <-ctx.Done():
				fail(ctx.Err())
				return
			case resultCh <- result:
			}
			index++
			lastKey = uint64(entry.ID)
		}

		reportProgress()
	}
	if err := cur.Err(); err != nil {
		fail(err)
	}
}
