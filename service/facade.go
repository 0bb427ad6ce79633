package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/config"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/observe"
)

// Facade forwards calls to the native boundary and converts the results to
// wire types. A Facade is safe for concurrent use; calls are independent.
type Facade struct {
	explicit *native.Boundary
	observer observe.Observer
	limits   config.Limits
	clock    func() time.Time
	newID    func() string

	linkOnce sync.Once
	linked   native.Boundary
	linkErr  error
}

// Option configures a Facade.
type Option func(*Facade)

// WithBoundary links b directly instead of looking up the registered one.
func WithBoundary(b native.Boundary) Option {
	return func(f *Facade) {
		f.explicit = &b
	}
}

// WithObserver installs the event sink. The default discards events.
func WithObserver(o observe.Observer) Option {
	return func(f *Facade) {
		f.observer = observe.ValidObserverOrDefault(o)
	}
}

// WithLimits sets the limits used when a caller passes 0.
func WithLimits(l config.Limits) Option {
	return func(f *Facade) {
		defaults := config.DefaultLimits()
		if l.Page <= 0 {
			l.Page = defaults.Page
		}
		if l.Search <= 0 {
			l.Search = defaults.Search
		}
		if l.Recommendation <= 0 {
			l.Recommendation = defaults.Recommendation
		}
		f.limits = l
	}
}

// WithClock sets the clock used to time calls.
func WithClock(now func() time.Time) Option {
	return func(f *Facade) {
		f.clock = now
	}
}

// New returns a Facade. Without WithBoundary, the boundary registered with
// native.Register is resolved on the first call.
func New(opts ...Option) *Facade {
	f := &Facade{
		observer: observe.Discard,
		limits:   config.DefaultLimits(),
		clock:    time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// link resolves the boundary once. A failure is kept and returned on every
// later call.
func (f *Facade) link() (native.Boundary, error) {
	f.linkOnce.Do(func() {
		if f.explicit != nil {
			f.linked = *f.explicit
			return
		}
		b, ok := native.Lookup()
		if !ok {
			f.linkErr = cmerr.Linking(fmt.Sprintf("the native module %q is not linked; register a boundary before the first call", native.ModuleName))
			f.observer.Observe(observe.Event{Name: observe.LinkFailed, Err: f.linkErr})
			return
		}
		f.linked = b
	})
	return f.linked, f.linkErr
}

// Linked reports whether the boundary is available, resolving it if needed.
func (f *Facade) Linked() error {
	_, err := f.link()
	return err
}

type opInfo struct {
	code  string
	group string
}

func hasGroup(b native.Boundary, group string) bool {
	switch group {
	case groupContacts:
		return b.Contacts != nil
	case groupSearch:
		return b.Search != nil
	case groupAuthorization:
		return b.Authorization != nil
	case groupSocial:
		return b.Social != nil
	case groupRecommendations:
		return b.Recommendations != nil
	}
	return false
}

// invoke runs one operation: pre-flight check, one boundary call, and the
// conversion of its result. Boundary failures are wrapped with the
// operation's code; nothing is retried.
func invoke[R, T any](
	ctx context.Context,
	f *Facade,
	op string,
	check error,
	call func(ctx context.Context, b native.Boundary) (R, error),
	conv func(R) (T, error),
) (T, error) {
	var zero T
	info, ok := operations[op]
	if !ok {
		panic("service: unregistered operation " + op)
	}
	id := f.newID()
	start := f.clock()
	emit := func(name string, err error, fields map[string]any) {
		f.observer.Observe(observe.Event{
			Name:     name,
			CallID:   id,
			Op:       op,
			Duration: f.clock().Sub(start),
			Err:      err,
			Fields:   fields,
		})
	}
	f.observer.Observe(observe.Event{Name: observe.CallStart, CallID: id, Op: op})

	if check != nil {
		err := withOp(check, op)
		emit(observe.CallRejected, err, nil)
		return zero, err
	}

	b, err := f.link()
	if err == nil && !hasGroup(b, info.group) {
		err = cmerr.Linking(fmt.Sprintf("the %s service of %q is not linked", info.group, native.ModuleName))
	}
	if err != nil {
		emit(observe.CallFailed, err, nil)
		return zero, err
	}

	raw, err := call(ctx, b)
	if err != nil {
		if cmerr.KindOf(err) == cmerr.KindNotFound {
			err = withOp(err, op)
			emit(observe.CallOK, err, map[string]any{"found": false})
			return zero, err
		}
		wrapped := cmerr.Boundary(op, info.code, err)
		emit(observe.CallFailed, wrapped, nil)
		return zero, wrapped
	}

	out, err := conv(raw)
	if err != nil {
		err = withOp(err, op)
		if cmerr.KindOf(err) == cmerr.KindNotFound {
			emit(observe.CallOK, err, map[string]any{"found": false})
		} else {
			emit(observe.CallFailed, err, nil)
		}
		return zero, err
	}
	emit(observe.CallOK, nil, nil)
	return out, nil
}

func withOp(err error, op string) error {
	var e *cmerr.Error
	if errors.As(err, &e) {
		return e.WithOp(op)
	}
	return err
}

func identity[T any](v T) (T, error) {
	return v, nil
}

func noResult(struct{}) (struct{}, error) {
	return struct{}{}, nil
}

// checks collects pre-flight problems.
type checks []cmerr.FieldError

func (c *checks) required(field, value string) {
	if value == "" {
		*c = append(*c, cmerr.FieldError{Field: field, Msg: "is required"})
	}
}

func (c *checks) nonNegative(field string, value int) {
	if value < 0 {
		*c = append(*c, cmerr.FieldError{Field: field, Msg: "must not be negative"})
	}
}

func (c *checks) positive(field string, value int) {
	if value <= 0 {
		*c = append(*c, cmerr.FieldError{Field: field, Msg: "must be positive"})
	}
}

func (c *checks) add(err error) {
	if err == nil {
		return
	}
	var e *cmerr.Error
	if errors.As(err, &e) && e.Kind == cmerr.KindValidation {
		*c = append(*c, e.Fields...)
		return
	}
	*c = append(*c, cmerr.FieldError{Msg: err.Error()})
}

func (c checks) err() error {
	if len(c) == 0 {
		return nil
	}
	return cmerr.Validation(c...)
}

// window validates skip and limit and applies the default limit.
func window(c *checks, skip, limit, def int) int {
	c.nonNegative("skip", skip)
	c.nonNegative("limit", limit)
	if limit == 0 {
		return def
	}
	return limit
}
