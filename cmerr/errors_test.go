package cmerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestErrorFormatting(t *testing.T) {
	var nilErr *Error
	be.Equal(t, nilErr.Error(), "cmbridge: <nil>")
	be.Equal(t, Boundary("searchContacts", "search_error", errors.New("index offline")).Error(),
		"cmbridge: search_error: index offline")
	be.Equal(t, Invalid("userId", "is required").Error(), "cmbridge: invalid_argument: userId is required")
	be.Equal(t, Linking("").Error(), "cmbridge: linking_error")
}

func TestKindsMatchSentinels(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w", Boundary("followUser", "follow_error", cause))

	be.True(t, errors.Is(err, ErrBoundary))
	be.True(t, !errors.Is(err, ErrValidation))
	be.True(t, errors.Is(err, cause))
	be.Equal(t, KindOf(err), KindBoundary)

	be.True(t, errors.Is(NotFound("fetchContactWithId", "x"), ErrNotFound))
	be.True(t, errors.Is(Linking("missing"), ErrLinking))
	be.Equal(t, KindOf(errors.New("plain")), Kind(""))
}

func TestWithOp(t *testing.T) {
	err := Invalid("limit", "must not be negative").WithOp("getFeed")
	be.Equal(t, err.Op, "getFeed")
	be.Equal(t, err.WithOp("other").Op, "getFeed")
}
