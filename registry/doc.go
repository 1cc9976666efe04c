/*
Package registry maps Go types to their natural key functions.

A natural key is the field, or combination of fields, that must be unique
across every stored value of a type. The memory gate looks the function up
when it is constructed and indexes every value under the key it returns:

	func init() {
	    registry.RegisterNaturalKey(func(r Record) string {
	        return r.Email
	    })
	}

	users, err := memory.New[Record]()

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
