// Package cmerr defines the typed errors returned by every cmbridge package.
//
// Four kinds exist:
//
//   - Validation: an argument or record failed a local check. Nothing crossed
//     the native boundary.
//   - Boundary: the native SDK reported a failure for an operation. Code is
//     the operation-scoped code string (for example "search_error") and
//     Message carries the SDK's original message.
//   - NotFound: a fetch by identifier found nothing. Callers treat it as an
//     expected outcome.
//   - Linking: the native boundary is not registered. Fatal for the facade.
//
// Match kinds with errors.Is against the sentinel values:
//
//	if errors.Is(err, cmerr.ErrNotFound) {
//		// absent
//	}
package cmerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error.
type Kind string

const (
	// KindValidation marks a pre-flight argument or record check failure.
	KindValidation Kind = "validation"
	// KindBoundary marks a failure reported by the native boundary.
	KindBoundary Kind = "boundary"
	// KindNotFound marks an absent resource.
	KindNotFound Kind = "not_found"
	// KindLinking marks a missing native boundary.
	KindLinking Kind = "linking"
)

// Sentinels for errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrBoundary   = &Error{Kind: KindBoundary}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrLinking    = &Error{Kind: KindLinking}
)

// FieldError names one invalid field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Error is the typed error carried across cmbridge packages.
type Error struct {
	Kind    Kind
	Op      string
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "cmbridge: <nil>"
	}
	code := e.Code
	if code == "" {
		code = string(e.Kind)
	}
	msg := e.Message
	if msg == "" && len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			if f.Field == "" {
				parts = append(parts, f.Msg)
				continue
			}
			parts = append(parts, f.Field+" "+f.Msg)
		}
		msg = strings.Join(parts, "; ")
	}
	if msg == "" {
		return fmt.Sprintf("cmbridge: %s", code)
	}
	return fmt.Sprintf("cmbridge: %s: %s", code, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Code == "" && t.Op == "" && t.Kind == e.Kind
}

// Validation returns a validation error for the given field problems.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Code: "invalid_argument", Fields: fields}
}

// Invalid is shorthand for a single-field validation error.
func Invalid(field, msg string) *Error {
	return Validation(FieldError{Field: field, Msg: msg})
}

// Boundary wraps a native failure reported for op under code.
func Boundary(op, code string, cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindBoundary, Op: op, Code: code, Message: msg, Err: cause}
}

// NotFound reports that op found nothing for id.
func NotFound(op, id string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Code: "not_found", Message: fmt.Sprintf("%q not found", id)}
}

// Linking reports an unavailable native boundary.
func Linking(msg string) *Error {
	return &Error{Kind: KindLinking, Code: "linking_error", Message: msg}
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// WithOp returns a copy of e attributed to op when e has no op yet.
func (e *Error) WithOp(op string) *Error {
	if e == nil || e.Op != "" {
		return e
	}
	cp := *e
	cp.Op = op
	return &cp
}

// Prefixed returns err with every field name of a validation error prefixed
// by path, as in "avatars[0].data". Other errors are returned unchanged.
func Prefixed(err error, path string) error {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindValidation {
		return err
	}
	cp := *e
	cp.Fields = make([]FieldError, 0, len(e.Fields))
	for _, f := range e.Fields {
		name := path
		if f.Field != "" {
			if strings.HasPrefix(f.Field, "[") {
				name += f.Field
			} else {
				name += "." + f.Field
			}
		}
		cp.Fields = append(cp.Fields, FieldError{Field: name, Msg: f.Msg})
	}
	return &cp
}
