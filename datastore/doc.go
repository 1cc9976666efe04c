/*
Package datastore defines the core contract of the record store.

The main interface is Gate[T], the only way callers touch stored records:

	type Gate[T any] interface {
	    Get(ctx context.Context, id ID) (Entry[T], error)
	    Add(ctx context.Context, value T) (ID, error)
	    Update(ctx context.Context, entry Entry[T]) (T, error)
	    Delete(ctx context.Context, id ID) (T, error)
	    Iterate(pageSize int) Cursor[T]
	    Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[Entry[T]]
	    Size() int
	}

Get, Update and Delete report a missing ID with errors.ErrNotFound. Add and
Update report a natural key that already belongs to another record with
errors.ErrAlreadyExists. Both are ordinary outcomes.

Iterate returns an explicit Cursor holding the next lower-bound ID. Each batch
is read under the gate's lock; the lock is released between batches, so a full
scan is weakly consistent rather than a snapshot.

Implementations:
  - memory: B-tree backed gate with a natural key uniqueness index
  - mock: scriptable gate for testing code that consumes a Gate
*/
package datastore
