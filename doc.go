/*
Package recordstore is a single-process store of uniquely-keyed user records.

The core is the data access gate (package datastore and its memory
implementation): an ordered, concurrency-safe store with a primary ID index and
a secondary uniqueness index on each record's natural key (its email), plus
cursor-based pagination in ID order.

This package wires the pieces together:

	cfg, err := config.Load()
	users, err := recordstore.Open(ctx, cfg, observability.NewSlogObserver(logger))

	id, err := users.Add(ctx, record.Record{Name: "Ann", Email: "ann@example.com"})
	if errors.IsAlreadyExists(err) {
	    // email taken
	}

	cur := users.Iterate(25)
	for cur.Next(ctx) {
	    page := record.FromBatch(cur.Batch())
	    ...
	}

Not found and conflict are reported as typed errors from the errors package.
Iteration is weakly consistent: each batch is an atomic read, but the lock is
released between batches.
*/
package recordstore
