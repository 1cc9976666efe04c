/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import (
	"context"
	"time"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
)

// Op names a gate operation.
type Op string

const (
	OpGet     Op = "get"
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpIterate Op = "iterate"
)

// Outcome classes used as the status label for metrics and logs.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Event describes one completed gate operation.
type Event struct {
	Op       Op
	ID       datastore.ID // Zero when the operation has no single target (iterate, rejected add)
	Count    int          // Entries read, for iterate
	Duration time.Duration
	Err      error
}

// Outcome classifies the event's error.
func (e Event) Outcome() string {
	switch {
	case e.Err == nil:
		return OutcomeOK
	case errors.IsNotFound(e.Err):
		return OutcomeNotFound
	case errors.IsAlreadyExists(e.Err):
		return OutcomeConflict
	case errors.IsValidationError(e.Err):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// Observer receives an event after every gate operation. Implementations are
// called outside the gate's lock and must be safe for concurrent use.
type Observer interface {
	OnOperation(ctx context.Context, event Event)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnOperation(context.Context, Event) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) OnOperation(ctx context.Context, event Event) {
	for _, o := range m {
		o.OnOperation(ctx, event)
	}
}

// Combine returns a single observer for the non-nil observers given.
func Combine(observers ...Observer) Observer {
	var out MultiObserver
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return NoopObserver{}
	case 1:
		return out[0]
	default:
		return out
	}
}
