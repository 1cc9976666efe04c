/*
Package memory provides the in-memory implementation of datastore.Gate.

A Gate keeps two structures behind one mutex:

  - an ordered store (a B-tree keyed by ID) holding the values, and
  - a uniqueness index mapping each value's natural key to its ID.

Every mutation updates both before releasing the lock, so no caller ever sees
one without the other. IDs come from a counter that starts at a configurable
base and advances only when an Add succeeds.

	users, err := memory.New[record.Record](
	    memory.WithTypeName("User"),
	    memory.WithStartID(100),
	    memory.WithObserver(observability.NewSlogObserver(logger)),
	)

	id, err := users.Add(ctx, record.Record{Name: "Ann", Email: "ann@example.com"})

Iteration goes through a cursor that locks once per batch. A full scan is
weakly consistent: each batch is an atomic read, but inserts and deletes made
between batches are visible to the rest of the scan.
*/
package memory
