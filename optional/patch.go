// Package optional contains Patch, a field wrapper for partial updates that
// distinguishes three states: absent, explicitly null, and set to a value.
//
// The zero Patch is absent. Struct fields of type Patch should carry the
// `omitzero` JSON option so that absent fields are omitted on encoding:
//
//	type Update struct {
//		Title optional.Patch[string] `json:"title,omitzero"`
//	}
//
// Decoding a JSON object yields Absent for missing keys, Null for a literal
// null and Set for any other value.
package optional

import (
	"bytes"
	"encoding/json"
)

type state uint8

const (
	absent state = iota
	null
	set
)

// Patch is a three-state optional field.
type Patch[T any] struct {
	state state
	value T
}

// Absent returns a Patch with no value and no intent to change.
func Absent[T any]() Patch[T] {
	return Patch[T]{}
}

// Null returns a Patch that explicitly clears the field.
func Null[T any]() Patch[T] {
	return Patch[T]{state: null}
}

// Set returns a Patch holding value.
func Set[T any](value T) Patch[T] {
	return Patch[T]{state: set, value: value}
}

// IsAbsent reports whether the field was not provided.
func (p Patch[T]) IsAbsent() bool {
	return p.state == absent
}

// IsNull reports whether the field was explicitly cleared.
func (p Patch[T]) IsNull() bool {
	return p.state == null
}

// IsSet reports whether the field carries a value.
func (p Patch[T]) IsSet() bool {
	return p.state == set
}

// IsZero reports whether the field is absent. encoding/json uses it for omitzero.
func (p Patch[T]) IsZero() bool {
	return p.state == absent
}

// Get returns the value and whether one is set.
func (p Patch[T]) Get() (T, bool) {
	return p.value, p.state == set
}

// ValueOr returns the value when set and fallback otherwise.
func (p Patch[T]) ValueOr(fallback T) T {
	if p.state == set {
		return p.value
	}
	return fallback
}

// Map converts a Patch[T] into a Patch[U], preserving absent and null.
func Map[T, U any](p Patch[T], fn func(T) U) Patch[U] {
	switch p.state {
	case set:
		return Set(fn(p.value))
	case null:
		return Null[U]()
	default:
		return Absent[U]()
	}
}

// MarshalJSON implements json.Marshaler. Absent and null both encode as null;
// omitzero is what keeps absent fields out of the output.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if p.state != set {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		p.state, p.value = null, zero
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	p.state, p.value = set, value
	return nil
}
