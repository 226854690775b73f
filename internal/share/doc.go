// Package share converts one record into a compact URL-safe token and back.
//
// Encode drops configuration fields, serializes the rest as JSON in field
// order, and compresses it with the LZ-String URI-component format. Decode
// reports why a token could not be used through DecodeError so callers can
// tell a missing payload from a damaged one.
package share
