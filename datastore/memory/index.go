/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import "github.com/suparena/recordstore/datastore"

// uniqueIndex maps natural keys to IDs. Only the gate touches it, always
// together with the ordered store and under the same lock.
type uniqueIndex map[string]datastore.ID

func (ix uniqueIndex) lookup(key string) (datastore.ID, bool) {
	id, ok := ix[key]
	return id, ok
}

func (ix uniqueIndex) insert(key string, id datastore.ID) {
	ix[key] = id
}

// remove deletes key only if it maps to id. It reports false when the
// mapping is missing or points elsewhere.
func (ix uniqueIndex) remove(key string, id datastore.ID) bool {
	owner, ok := ix[key]
	if !ok || owner != id {
		return false
	}
	delete(ix, key)
	return true
}
