// Package record defines the user record kept by the store and its external
// JSON representation.
//
// A record's identity for uniqueness is its natural key, the email address,
// exposed as the NaturalKey function and registered with the registry package
// so memory.New[Record] picks it up. Stored adds the assigned ID, which is
// serialized as "id".
package record
