/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"context"
	"fmt"

	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/datastore/memory"
	"github.com/suparena/recordstore/observability"
	"github.com/suparena/recordstore/record"
)

// Users is the gate over user records handed to the request layer.
type Users = datastore.Gate[record.Record]

// Open builds the users gate described by cfg and loads cfg.SeedFile into it,
// if set. Observers are notified of every operation, seeding included.
func Open(ctx context.Context, cfg config.Config, observers ...observability.Observer) (*memory.Gate[record.Record], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	users, err := memory.New[record.Record](
		memory.WithTypeName(record.TypeName),
		memory.WithStartID(datastore.ID(cfg.StartID)),
		memory.WithPageSizeConfig(cfg.PageSizes()),
		memory.WithInvariantChecks(cfg.CheckInvariants),
		memory.WithObserver(observability.Combine(observers...)),
	)
	if err != nil {
		return nil, err
	}

	if cfg.SeedFile != "" {
		seed, err := config.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := Seed(ctx, users, seed.Users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// Seed adds records in order. It stops at the first record the gate rejects.
func Seed(ctx context.Context, users Users, records []record.Record) error {
	for i, r := range records {
		if _, err := users.Add(ctx, r); err != nil {
			return fmt.Errorf("seed record %d (%s): %w", i, r.Email, err)
		}
	}
	return nil
}

// Collect reads every user page by page and concatenates the batches.
func Collect(ctx context.Context, users Users, pageSize int) (record.Batch, error) {
	var all record.Batch
	cur := users.Iterate(pageSize)
	for cur.Next(ctx) {
		all = append(all, record.FromBatch(cur.Batch())...)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return all, nil
}
