/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// KeyFunc extracts the natural key of a value. Two values with the same
// natural key describe the same real-world entity.
type KeyFunc[T any] func(T) string

var (
	naturalKeyRegistry = make(map[reflect.Type]any)
	mu                 sync.RWMutex
)

// RegisterNaturalKey associates a Go type T with the function that derives its natural key.
// A later registration for the same type replaces the earlier one.
func RegisterNaturalKey[T any](fn KeyFunc[T]) {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	naturalKeyRegistry[t] = fn
}

// GetNaturalKey retrieves the natural key function for type T, if any.
func GetNaturalKey[T any]() (KeyFunc[T], bool) {
	t := reflect.TypeFor[T]()

	mu.RLock()
	defer mu.RUnlock()
	fn, ok := naturalKeyRegistry[t]
	if !ok {
		return nil, false
	}
	return fn.(KeyFunc[T]), true
}
