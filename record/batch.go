/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import "github.com/suparena/recordstore/datastore"

// Batch is one page of stored records in ascending ID order.
type Batch []Stored

// FromBatch converts a gate batch into a Batch.
func FromBatch(b datastore.Batch[Record]) Batch {
	out := make(Batch, len(b))
	for i, e := range b {
		out[i] = FromEntry(e)
	}
	return out
}

// List is the envelope used when a page is returned on its own: {"users": [...]}.
type List struct {
	Users Batch `json:"users"`
}
