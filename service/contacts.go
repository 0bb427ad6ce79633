package service

import (
	"context"
	"strings"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
)

// Initialize starts the SDK for user. An empty token is passed to the SDK as
// absent.
func (f *Facade) Initialize(ctx context.Context, apiKey string, user native.UserInfo, token string, opts native.Options) error {
	var c checks
	c.required("apiKey", strings.TrimSpace(apiKey))
	c.required("userInfo.userId", strings.TrimSpace(user.UserID))
	var tok *string
	if token != "" {
		tok = &token
	}
	_, err := invoke(ctx, f, OpInitialize, c.err(),
		func(ctx context.Context, b native.Boundary) (struct{}, error) {
			return struct{}{}, b.Contacts.Initialize(ctx, apiKey, user, tok, opts)
		}, noResult)
	return err
}

// IsInitialized reports whether Initialize has completed.
func (f *Facade) IsInitialized(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpIsInitialized, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.IsInitialized(ctx)
		}, identity[bool])
}

// CurrentState returns the SDK's state name.
func (f *Facade) CurrentState(ctx context.Context) (string, error) {
	return invoke(ctx, f, OpCurrentState, nil,
		func(ctx context.Context, b native.Boundary) (string, error) {
			return b.Contacts.CurrentState(ctx)
		}, identity[string])
}

// Reset clears SDK state.
func (f *Facade) Reset(ctx context.Context) error {
	_, err := invoke(ctx, f, OpReset, nil,
		func(ctx context.Context, b native.Boundary) (struct{}, error) {
			return struct{}{}, b.Contacts.Reset(ctx)
		}, noResult)
	return err
}

// FetchContacts returns every device contact.
func (f *Facade) FetchContacts(ctx context.Context) ([]contacts.Contact, error) {
	return invoke(ctx, f, OpFetchContacts, nil,
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Contacts.FetchContacts(ctx)
		}, contacts.ToWireList)
}

// FetchContactsWithFieldType returns contacts that have the given field.
func (f *Facade) FetchContactsWithFieldType(ctx context.Context, fieldType int) ([]contacts.Contact, error) {
	var c checks
	ft, err := contacts.ParseContactFieldType(fieldType)
	c.add(err)
	return invoke(ctx, f, OpFetchContactsWithFieldType, c.err(),
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Contacts.FetchContactsWithFieldType(ctx, int(ft))
		}, contacts.ToWireList)
}

// FetchContactsWithBatch returns the batchIndex'th window of batchSize
// contacts.
func (f *Facade) FetchContactsWithBatch(ctx context.Context, batchSize, batchIndex int) ([]contacts.Contact, error) {
	var c checks
	c.positive("batchSize", batchSize)
	c.nonNegative("batchIndex", batchIndex)
	return invoke(ctx, f, OpFetchContactsWithBatch, c.err(),
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Contacts.FetchContactsWithBatch(ctx, batchSize, batchIndex)
		}, contacts.ToWireList)
}

// FetchContactWithID returns one contact. A missing contact is reported as
// a not-found error.
func (f *Facade) FetchContactWithID(ctx context.Context, id string) (contacts.Contact, error) {
	var c checks
	c.required("contactId", strings.TrimSpace(id))
	return invoke(ctx, f, OpFetchContactWithID, c.err(),
		func(ctx context.Context, b native.Boundary) (*native.Contact, error) {
			return b.Contacts.FetchContactWithID(ctx, id)
		},
		func(n *native.Contact) (contacts.Contact, error) {
			if n == nil {
				return contacts.Contact{}, cmerr.NotFound(OpFetchContactWithID, id)
			}
			return contacts.ToWire(*n)
		})
}

// GetContactsCount returns the number of device contacts.
func (f *Facade) GetContactsCount(ctx context.Context) (int, error) {
	return invoke(ctx, f, OpGetContactsCount, nil,
		func(ctx context.Context, b native.Boundary) (int, error) {
			return b.Contacts.GetContactsCount(ctx)
		}, identity[int])
}

// EnableBackgroundSync turns on background sync.
func (f *Facade) EnableBackgroundSync(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpEnableBackgroundSync, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.EnableBackgroundSync(ctx)
		}, identity[bool])
}

// ScheduleBackgroundSyncTask queues a background sync.
func (f *Facade) ScheduleBackgroundSyncTask(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpScheduleBackgroundSyncTask, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.ScheduleBackgroundSyncTask(ctx)
		}, identity[bool])
}

// CheckHealth reports whether the SDK is healthy.
func (f *Facade) CheckHealth(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpCheckHealth, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.CheckHealth(ctx)
		}, identity[bool])
}

// HasContactChanged reports whether the device copy of contact differs from
// the given wire contact.
func (f *Facade) HasContactChanged(ctx context.Context, contact contacts.Contact) (bool, error) {
	var c checks
	c.required("identifier", strings.TrimSpace(contact.Identifier))
	n, err := contacts.FromWire(contact)
	c.add(err)
	return invoke(ctx, f, OpHasContactChanged, c.err(),
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.HasContactChanged(ctx, n)
		}, identity[bool])
}

// GetContactsForSync returns the contacts pending upload.
func (f *Facade) GetContactsForSync(ctx context.Context) ([]contacts.Contact, error) {
	return invoke(ctx, f, OpGetContactsForSync, nil,
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Contacts.GetContactsForSync(ctx)
		}, contacts.ToWireList)
}

// StartSync uploads contacts for userID from sourceID and returns the number
// synced.
func (f *Facade) StartSync(ctx context.Context, sourceID, userID string) (int, error) {
	var c checks
	c.required("sourceId", strings.TrimSpace(sourceID))
	c.required("userId", strings.TrimSpace(userID))
	return invoke(ctx, f, OpStartSync, c.err(),
		func(ctx context.Context, b native.Boundary) (int, error) {
			return b.Contacts.StartSync(ctx, sourceID, userID)
		}, identity[int])
}

// CancelSync stops a running sync.
func (f *Facade) CancelSync(ctx context.Context) (bool, error) {
	return invoke(ctx, f, OpCancelSync, nil,
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Contacts.CancelSync(ctx)
		}, identity[bool])
}

// GetSimplifiedContacts returns every contact in the compact list shape.
func (f *Facade) GetSimplifiedContacts(ctx context.Context) ([]contacts.SimplifiedContact, error) {
	return invoke(ctx, f, OpGetSimplifiedContacts, nil,
		func(ctx context.Context, b native.Boundary) ([]native.Contact, error) {
			return b.Contacts.FetchContacts(ctx)
		},
		func(ns []native.Contact) ([]contacts.SimplifiedContact, error) {
			ws, err := contacts.ToWireList(ns)
			if err != nil {
				return nil, err
			}
			return contacts.SimplifyList(ws), nil
		})
}
