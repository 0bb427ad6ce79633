package service

import (
	"context"

	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/observe"
)

// SearchResult is one window of search matches. TotalCount counts every
// match, not just this window.
type SearchResult struct {
	Contacts   []contacts.Contact `json:"contacts"`
	TotalCount int                `json:"totalCount"`
}

// AccessResult is the outcome of an access request.
type AccessResult struct {
	Granted bool                  `json:"granted"`
	Status  contacts.AccessStatus `json:"status"`
}

// SearchContacts searches contacts for query within the fields of the
// fieldType bitmask. Out-of-range bitmasks search every field.
func (f *Facade) SearchContacts(ctx context.Context, query string, fieldType int64, offset, limit int) (SearchResult, error) {
	var c checks
	c.nonNegative("offset", offset)
	c.nonNegative("limit", limit)
	if limit == 0 {
		limit = f.limits.Search
	}
	fields := contacts.DecodeFieldType(fieldType)
	return invoke(ctx, f, OpSearchContacts, c.err(),
		func(ctx context.Context, b native.Boundary) (native.SearchResult, error) {
			r, err := b.Search.SearchContacts(ctx, query, uint32(fields), offset, limit)
			r.Contacts = trim(f, OpSearchContacts, r.Contacts, limit)
			return r, err
		},
		func(r native.SearchResult) (SearchResult, error) {
			ws, err := contacts.ToWireList(r.Contacts)
			if err != nil {
				return SearchResult{}, err
			}
			return SearchResult{Contacts: ws, TotalCount: r.TotalCount}, nil
		})
}

// QuickSearch runs the SDK's type-ahead search.
func (f *Facade) QuickSearch(ctx context.Context, query string) ([]contacts.Contact, error) {
	return invoke(ctx, f, OpQuickSearch, nil,
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Search.QuickSearch(ctx, query)
		}, contacts.ToWireList)
}

// SearchContactsCount returns the number of searchable contacts.
func (f *Facade) SearchContactsCount(ctx context.Context) (int, error) {
	return invoke(ctx, f, OpSearchContactsCount, nil,
		func(ctx context.Context, b native.Boundary) (int, error) {
			return b.Search.GetContactsCount(ctx)
		}, identity[int])
}

// RequestContactsAccess prompts for contacts permission.
func (f *Facade) RequestContactsAccess(ctx context.Context) (AccessResult, error) {
	return invoke(ctx, f, OpRequestContactsAccess, nil,
		func(ctx context.Context, b native.Boundary) (native.AccessResult, error) {
			return b.Authorization.RequestContactsAccess(ctx)
		},
		func(r native.AccessResult) (AccessResult, error) {
			st, err := contacts.ParseAccessStatus(r.Status)
			if err != nil {
				return AccessResult{}, err
			}
			return AccessResult{Granted: r.Granted, Status: st}, nil
		})
}

// CheckAccessStatus returns the current permission state.
func (f *Facade) CheckAccessStatus(ctx context.Context) (contacts.AccessStatus, error) {
	return invoke(ctx, f, OpCheckAccessStatus, nil,
		func(ctx context.Context, b native.Boundary) (int, error) {
			return b.Authorization.CheckAccessStatus(ctx)
		}, contacts.ParseAccessStatus)
}

// HasContactsReadAccess reports whether contacts are readable.
func (f *Facade) HasContactsReadAccess(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpHasContactsReadAccess, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Authorization.HasContactsReadAccess(ctx)
		}, identity[bool])
}

// ShouldShowSettingsAlert reports whether the user must be sent to settings
// to grant access.
func (f *Facade) ShouldShowSettingsAlert(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpShouldShowSettingsAlert, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Authorization.ShouldShowSettingsAlert(ctx)
		}, identity[bool])
}

// ShowSettingsAlertView presents the settings alert.
func (f *Facade) ShowSettingsAlertView(ctx context.Context) error {
	_, err := invoke(ctx, f, OpShowSettingsAlertView, nil,
		func(ctx context.Context, b native.Boundary) (struct{}, error) {
			return struct{}{}, b.Authorization.ShowSettingsAlertView(ctx)
		}, noResult)
	return err
}

// trim drops items past limit. The SDK should never return more than asked
// for; when it does the excess is reported and discarded.
func trim[T any](f *Facade, op string, items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	f.observer.Observe(observe.Event{
		Name: observe.PageOverflow,
		Op:   op,
		Fields: map[string]any{
			"limit":    limit,
			"returned": len(items),
		},
	})
	return items[:limit]
}
