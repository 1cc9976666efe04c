/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"encoding/json"

	"github.com/suparena/recordstore/datastore"
)

// Stored is a Record together with the ID the store assigned to it.
type Stored struct {
	UserID datastore.ID
	Record
}

// storedJSON is the wire shape of Stored. The ID goes out as "id".
type storedJSON struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    uint64 `json:"id"`
}

// FromEntry converts a gate entry into a Stored record.
func FromEntry(e datastore.Entry[Record]) Stored {
	return Stored{UserID: e.ID, Record: e.Value}
}

// Entry converts s back into a gate entry, e.g. for Update.
func (s Stored) Entry() datastore.Entry[Record] {
	return datastore.Entry[Record]{ID: s.UserID, Value: s.Record}
}

func (s Stored) MarshalJSON() ([]byte, error) {
	return json.Marshal(storedJSON{
		Name:  s.Name,
		Email: s.Email,
		ID:    uint64(s.UserID),
	})
}

func (s *Stored) UnmarshalJSON(data []byte) error {
	var wire storedJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = Stored{
		UserID: datastore.ID(wire.ID),
		Record: Record{Name: wire.Name, Email: wire.Email},
	}
	return nil
}
