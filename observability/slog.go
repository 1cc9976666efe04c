/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import (
	"context"
	"log/slog"
)

// SlogObserver logs gate operations to a slog.Logger. Successful operations
// log at Debug, not-found and conflict outcomes at Warn, anything else at Error.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver that emits to the given logger.
// A nil logger falls back to slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnOperation(ctx context.Context, event Event) {
	outcome := event.Outcome()
	attrs := []slog.Attr{
		slog.String("op", string(event.Op)),
		slog.String("outcome", outcome),
		slog.Duration("duration", event.Duration),
	}
	if event.Op == OpIterate {
		attrs = append(attrs, slog.Int("count", event.Count))
	} else {
		attrs = append(attrs, slog.Uint64("id", uint64(event.ID)))
	}
	if event.Err != nil {
		attrs = append(attrs, slog.Any("error", event.Err))
	}

	var level slog.Level
	switch outcome {
	case OutcomeOK:
		level = slog.LevelDebug
	case OutcomeNotFound, OutcomeConflict, OutcomeInvalid:
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	o.logger.LogAttrs(ctx, level, "gate "+string(event.Op), attrs...)
}
