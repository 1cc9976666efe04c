/*
Package errors provides semantic error types for the record store.

Not found and conflict are ordinary outcomes of gate operations. They are
returned as typed errors that match the sentinels below through errors.Is, so
callers can branch on them without string matching.

Common Errors:

	var (
	    ErrNotFound      = errors.New("record not found")
	    ErrAlreadyExists = errors.New("record already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrNoNaturalKey  = errors.New("no natural key function registered for type")
	    ErrInvariant     = errors.New("store invariant violated")
	)

Usage:

	entry, err := users.Get(ctx, 42)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // respond 404
	    }
	    return err
	}

	id, err := users.Add(ctx, rec)
	if errors.IsAlreadyExists(err) {
	    // respond 400, the email is taken
	}

ErrInvariant is different: the gate panics with an *InvariantError when it
finds its two indexes out of sync. It is never returned from an operation.
*/
package errors
