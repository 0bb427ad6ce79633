package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/recommend"
	"github.com/spachava753/cmbridge/social"
)

// Dispatch runs op with positional JSON arguments, as sent by script and
// socket callers. args is a JSON array or empty; missing and null arguments
// take their zero value. A lookup that finds nothing yields a nil result and
// no error.
func (f *Facade) Dispatch(ctx context.Context, op string, args json.RawMessage) (any, error) {
	h, ok := handlers[op]
	if !ok {
		return nil, cmerr.Invalid("op", fmt.Sprintf("unknown operation %q", op))
	}
	r, err := newArgReader(args)
	if err != nil {
		return nil, err.WithOp(op)
	}
	out, callErr := h(ctx, f, r)
	if r.problems != nil {
		return nil, withOp(r.problems.err(), op)
	}
	if cmerr.KindOf(callErr) == cmerr.KindNotFound {
		return nil, nil
	}
	if callErr != nil {
		return nil, callErr
	}
	return out, nil
}

type handler func(ctx context.Context, f *Facade, r *argReader) (any, error)

type argReader struct {
	args     []json.RawMessage
	problems checks
}

func newArgReader(raw json.RawMessage) (*argReader, *cmerr.Error) {
	r := &argReader{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return r, nil
	}
	if err := json.Unmarshal(raw, &r.args); err != nil {
		return nil, cmerr.Invalid("args", "must be a JSON array")
	}
	return r, nil
}

// read decodes argument i into dst, leaving dst untouched when the argument
// is missing or null.
func (r *argReader) read(i int, name string, dst any) {
	if i >= len(r.args) {
		return
	}
	raw := bytes.TrimSpace(r.args[i])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		if cmerr.KindOf(err) == cmerr.KindValidation {
			r.problems.add(cmerr.Prefixed(err, name))
			return
		}
		r.problems = append(r.problems, cmerr.FieldError{Field: name, Msg: fmt.Sprintf("has the wrong type: %v", err)})
	}
}

func (r *argReader) str(i int, name string) string {
	var s string
	r.read(i, name, &s)
	return s
}

func (r *argReader) num(i int, name string) int {
	var n int
	r.read(i, name, &n)
	return n
}

// call runs fn only when every argument decoded.
func call[T any](r *argReader, fn func() (T, error)) (any, error) {
	if r.problems != nil {
		return nil, nil
	}
	return fn()
}

func done(err error) (any, error) {
	return nil, err
}

var handlers = map[string]handler{
	OpInitialize: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		apiKey := r.str(0, "apiKey")
		var user native.UserInfo
		r.read(1, "userInfo", &user)
		token := r.str(2, "token")
		var opts native.Options
		r.read(3, "options", &opts)
		if r.problems != nil {
			return nil, nil
		}
		return done(f.Initialize(ctx, apiKey, user, token, opts))
	},
	OpIsInitialized: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.IsInitialized(ctx) })
	},
	OpCurrentState: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (string, error) { return f.CurrentState(ctx) })
	},
	OpReset: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return done(f.Reset(ctx))
	},
	OpFetchContacts: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() ([]contacts.Contact, error) { return f.FetchContacts(ctx) })
	},
	OpFetchContactsWithFieldType: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		ft := r.num(0, "fieldType")
		return call(r, func() ([]contacts.Contact, error) { return f.FetchContactsWithFieldType(ctx, ft) })
	},
	OpFetchContactsWithBatch: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		size, index := r.num(0, "batchSize"), r.num(1, "batchIndex")
		return call(r, func() ([]contacts.Contact, error) { return f.FetchContactsWithBatch(ctx, size, index) })
	},
	OpFetchContactWithID: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "contactId")
		return call(r, func() (contacts.Contact, error) { return f.FetchContactWithID(ctx, id) })
	},
	OpGetContactsCount: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (int, error) { return f.GetContactsCount(ctx) })
	},
	OpEnableBackgroundSync: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.EnableBackgroundSync(ctx) })
	},
	OpScheduleBackgroundSyncTask: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.ScheduleBackgroundSyncTask(ctx) })
	},
	OpCheckHealth: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.CheckHealth(ctx) })
	},
	OpHasContactChanged: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		var c contacts.Contact
		r.read(0, "contact", &c)
		return call(r, func() (bool, error) { return f.HasContactChanged(ctx, c) })
	},
	OpGetContactsForSync: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() ([]contacts.Contact, error) { return f.GetContactsForSync(ctx) })
	},
	OpStartSync: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		source, user := r.str(0, "sourceId"), r.str(1, "userId")
		return call(r, func() (int, error) { return f.StartSync(ctx, source, user) })
	},
	OpCancelSync: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.CancelSync(ctx) })
	},
	OpGetSimplifiedContacts: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() ([]contacts.SimplifiedContact, error) { return f.GetSimplifiedContacts(ctx) })
	},

	OpSearchContacts: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		query := r.str(0, "query")
		var fieldType int64
		r.read(1, "fieldType", &fieldType)
		offset, limit := r.num(2, "offset"), r.num(3, "limit")
		return call(r, func() (SearchResult, error) { return f.SearchContacts(ctx, query, fieldType, offset, limit) })
	},
	OpQuickSearch: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		query := r.str(0, "query")
		return call(r, func() ([]contacts.Contact, error) { return f.QuickSearch(ctx, query) })
	},
	OpSearchContactsCount: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (int, error) { return f.SearchContactsCount(ctx) })
	},

	OpRequestContactsAccess: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (AccessResult, error) { return f.RequestContactsAccess(ctx) })
	},
	OpCheckAccessStatus: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (contacts.AccessStatus, error) { return f.CheckAccessStatus(ctx) })
	},
	OpHasContactsReadAccess: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.HasContactsReadAccess(ctx) })
	},
	OpShouldShowSettingsAlert: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return call(r, func() (bool, error) { return f.ShouldShowSettingsAlert(ctx) })
	},
	OpShowSettingsAlertView: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		return done(f.ShowSettingsAlertView(ctx))
	},

	OpFollowUser: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "userId")
		return call(r, func() (social.FollowActionResponse, error) { return f.FollowUser(ctx, id) })
	},
	OpUnfollowUser: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "userId")
		return call(r, func() (social.FollowActionResponse, error) { return f.UnfollowUser(ctx, id) })
	},
	OpIsFollowingUser: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "userId")
		return call(r, func() (bool, error) { return f.IsFollowingUser(ctx, id) })
	},
	OpGetFollowers: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id, skip, limit := r.str(0, "userId"), r.num(1, "skip"), r.num(2, "limit")
		return call(r, func() (social.Page[social.FollowRelationship], error) { return f.GetFollowers(ctx, id, skip, limit) })
	},
	OpGetFollowing: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id, skip, limit := r.str(0, "userId"), r.num(1, "skip"), r.num(2, "limit")
		return call(r, func() (social.Page[social.FollowRelationship], error) { return f.GetFollowing(ctx, id, skip, limit) })
	},
	OpGetMutualFollows: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		skip, limit := r.num(0, "skip"), r.num(1, "limit")
		return call(r, func() (social.Page[social.CanonicalContact], error) { return f.GetMutualFollows(ctx, skip, limit) })
	},
	OpCreateEvent: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		var req social.CreateEventRequest
		r.read(0, "event", &req)
		return call(r, func() (social.EventActionResponse, error) { return f.CreateEvent(ctx, req) })
	},
	OpGetEvent: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "eventId")
		return call(r, func() (social.SocialEvent, error) { return f.GetEvent(ctx, id) })
	},
	OpUpdateEvent: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "eventId")
		var req social.UpdateEventRequest
		r.read(1, "updates", &req)
		return call(r, func() (social.EventActionResponse, error) { return f.UpdateEvent(ctx, id, req) })
	},
	OpDeleteEvent: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id := r.str(0, "eventId")
		return call(r, func() (social.EventActionResponse, error) { return f.DeleteEvent(ctx, id) })
	},
	OpGetUserEvents: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		id, skip, limit := r.str(0, "userId"), r.num(1, "skip"), r.num(2, "limit")
		return call(r, func() (social.Page[social.SocialEvent], error) { return f.GetUserEvents(ctx, id, skip, limit) })
	},
	OpGetFeed: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		skip, limit := r.num(0, "skip"), r.num(1, "limit")
		return call(r, func() (social.Page[social.SocialEvent], error) { return f.GetFeed(ctx, skip, limit) })
	},
	OpGetUpcomingEvents: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		skip, limit := r.num(0, "skip"), r.num(1, "limit")
		return call(r, func() (social.Page[social.SocialEvent], error) { return f.GetUpcomingEvents(ctx, skip, limit) })
	},
	OpGetForYouFeed: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		skip, limit := r.num(0, "skip"), r.num(1, "limit")
		return call(r, func() (social.Page[social.SocialEvent], error) { return f.GetForYouFeed(ctx, skip, limit) })
	},

	OpGetInviteRecommendations: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		limit := r.num(0, "limit")
		return call(r, func() ([]recommend.Recommendation, error) { return f.GetInviteRecommendations(ctx, limit) })
	},
	OpGetContactsUsingApp: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		limit := r.num(0, "limit")
		return call(r, func() ([]recommend.LocalCanonicalContact, error) { return f.GetContactsUsingApp(ctx, limit) })
	},
	OpGetUsersYouMightKnow: func(ctx context.Context, f *Facade, r *argReader) (any, error) {
		limit := r.num(0, "limit")
		return call(r, func() ([]social.CanonicalContact, error) { return f.GetUsersYouMightKnow(ctx, limit) })
	},
}
