// Package service is the facade over the native contacts SDK.
//
// Every operation validates its inputs, makes exactly one boundary call and
// converts the result to the wire types of the contacts, social and
// recommend packages. Failures are *cmerr.Error values: validation problems
// never reach the boundary, boundary failures carry an operation-scoped
// code, and lookups that find nothing report cmerr.ErrNotFound.
//
// The boundary is resolved once, on first use. When it is missing the
// Facade keeps failing with cmerr.ErrLinking even if a boundary is
// registered later.
//
// Dispatch exposes the same operations to transports that carry positional
// JSON arguments.
package service
