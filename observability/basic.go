/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import (
	"context"
	"sync"
)

// BasicObserver counts operations by op and outcome in memory. Useful for
// tests and debugging without a metrics backend.
type BasicObserver struct {
	mu     sync.Mutex
	counts map[Op]map[string]int64
}

// NewBasicObserver creates an empty BasicObserver.
func NewBasicObserver() *BasicObserver {
	return &BasicObserver{counts: make(map[Op]map[string]int64)}
}

func (b *BasicObserver) OnOperation(_ context.Context, event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byOutcome, ok := b.counts[event.Op]
	if !ok {
		byOutcome = make(map[string]int64)
		b.counts[event.Op] = byOutcome
	}
	byOutcome[event.Outcome()]++
}

// Count returns how many events were seen for op with the given outcome.
func (b *BasicObserver) Count(op Op, outcome string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[op][outcome]
}
