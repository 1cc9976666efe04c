/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"strings"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
)

// TypeName is the entity name used in store errors.
const TypeName = "User"

func init() {
	registry.RegisterNaturalKey[Record](NaturalKey)
}

// Record is a user as submitted by a client.
type Record struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// NaturalKey returns the field that identifies a record for uniqueness
// purposes: its email. Other fields do not take part.
func NaturalKey(r Record) string {
	return r.Email
}

// SameEntity reports whether a and b share a natural key.
func SameEntity(a, b Record) bool {
	return NaturalKey(a) == NaturalKey(b)
}

// Validate checks that both required fields are present.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.NewValidationError("email", "is required")
	}
	return nil
}
