package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/config"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/native/mocks"
	"github.com/spachava753/cmbridge/observe"
	"github.com/spachava753/cmbridge/optional"
	"github.com/spachava753/cmbridge/social"
)

func newFacade(t *testing.T, b native.Boundary) (*Facade, *observe.Recorder) {
	t.Helper()
	rec := &observe.Recorder{}
	return New(WithBoundary(b), WithObserver(rec)), rec
}

func TestSearchContacts(t *testing.T) {
	var gotFields uint32
	var gotLimit int
	search := &mocks.SearchService{
		MockSearchContacts: func(ctx context.Context, query string, fieldType uint32, offset, limit int) (native.SearchResult, error) {
			gotFields, gotLimit = fieldType, limit
			return native.SearchResult{
				Contacts: []native.Contact{
					{Identifier: "a", GivenName: "Ana"},
					{Identifier: "b", EmailAddresses: []native.EmailAddress{{Value: "ana@example.com"}}},
				},
				TotalCount: 2,
			}, nil
		},
	}
	f, rec := newFacade(t, native.Boundary{Search: search})

	fields := int64(contacts.Combine(contacts.FieldName, contacts.FieldEmail))
	res, err := f.SearchContacts(context.Background(), "ana", fields, 0, 20)
	be.Err(t, err, nil)
	be.Equal(t, len(res.Contacts), 2)
	be.Equal(t, res.TotalCount, 2)
	be.Equal(t, res.Contacts[0].GivenName, "Ana")
	be.Equal(t, res.Contacts[1].EmailAddresses[0].ContactID, "b")
	be.Equal(t, gotFields, uint32(fields))
	be.Equal(t, gotLimit, 20)
	be.Equal(t, rec.Names(), []string{observe.CallStart, observe.CallOK})
	be.True(t, rec.Events()[0].CallID != "")
	be.Equal(t, rec.Events()[0].CallID, rec.Events()[1].CallID)

	// limit 0 selects the default and a bad bitmask searches everything
	_, err = f.SearchContacts(context.Background(), "ana", -1, 0, 0)
	be.Err(t, err, nil)
	be.Equal(t, gotLimit, config.DefaultLimits().Search)
	be.Equal(t, gotFields, uint32(contacts.FieldAll))
}

func TestInitializeToken(t *testing.T) {
	var got []*string
	svc := &mocks.ContactService{
		MockInitialize: func(ctx context.Context, apiKey string, user native.UserInfo, token *string, opts native.Options) error {
			got = append(got, token)
			return nil
		},
	}
	f, _ := newFacade(t, native.Boundary{Contacts: svc})
	user := native.UserInfo{UserID: "u-1"}

	be.Err(t, f.Initialize(context.Background(), "key", user, "", native.Options{}), nil)
	be.Err(t, f.Initialize(context.Background(), "key", user, "tok", native.Options{}), nil)
	be.Equal(t, len(got), 2)
	be.True(t, got[0] == nil)
	be.Equal(t, *got[1], "tok")
}

func TestValidationNeverReachesBoundary(t *testing.T) {
	calls := 0
	svc := &mocks.SocialService{
		MockFollowUser: func(ctx context.Context, userID string) (native.FollowActionResponse, error) {
			calls++
			return native.FollowActionResponse{}, nil
		},
		MockGetFeed: func(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
			calls++
			return native.Page[native.SocialEvent]{}, nil
		},
		MockUpdateEvent: func(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error) {
			calls++
			return native.EventActionResponse{}, nil
		},
	}
	f, rec := newFacade(t, native.Boundary{Social: svc})
	ctx := context.Background()

	_, err := f.FollowUser(ctx, "  ")
	be.Err(t, err, cmerr.ErrValidation)
	_, err = f.GetFeed(ctx, -1, 0)
	be.Err(t, err, cmerr.ErrValidation)
	_, err = f.UpdateEvent(ctx, "e-1", social.UpdateEventRequest{})
	be.Err(t, err, cmerr.ErrValidation)
	_, err = f.UpdateEvent(ctx, "e-1", social.UpdateEventRequest{Title: optional.Null[string]()})
	be.Err(t, err, cmerr.ErrValidation)

	be.Equal(t, calls, 0)
	var e *cmerr.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Op, OpUpdateEvent)
	be.Equal(t, rec.Names()[len(rec.Names())-1], observe.CallRejected)
}

func TestBoundaryFailureCodes(t *testing.T) {
	boom := errors.New("sdk exploded")
	b := native.Boundary{
		Contacts: &mocks.ContactService{
			MockFetchContacts: func(ctx context.Context) ([]native.Contact, error) { return nil, boom },
		},
		Social: &mocks.SocialService{
			MockGetMutualFollows: func(ctx context.Context, skip, limit int) (native.Page[native.CanonicalContact], error) {
				return native.Page[native.CanonicalContact]{}, boom
			},
		},
		Recommendations: &mocks.RecommendationService{
			MockGetUsersYouMightKnow: func(ctx context.Context, limit int) ([]native.CanonicalContact, error) { return nil, boom },
		},
	}
	f, rec := newFacade(t, b)
	ctx := context.Background()

	tests := []struct {
		op   string
		call func() error
		code string
	}{
		{OpFetchContacts, func() error { _, err := f.FetchContacts(ctx); return err }, "fetch_error"},
		{OpGetSimplifiedContacts, func() error { _, err := f.GetSimplifiedContacts(ctx); return err }, "fetch_error"},
		{OpGetMutualFollows, func() error { _, err := f.GetMutualFollows(ctx, 0, 0); return err }, "get_mutual_follows_error"},
		{OpGetUsersYouMightKnow, func() error { _, err := f.GetUsersYouMightKnow(ctx, 0); return err }, "users_you_might_know_error"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			rec.Reset()
			err := tt.call()
			be.Err(t, err, cmerr.ErrBoundary)
			be.Err(t, err, boom)
			var e *cmerr.Error
			be.True(t, errors.As(err, &e))
			be.Equal(t, e.Code, tt.code)
			be.Equal(t, e.Op, tt.op)
			be.Equal(t, e.Message, "sdk exploded")
			be.Equal(t, rec.Names(), []string{observe.CallStart, observe.CallFailed})
		})
	}
}

func TestNotFound(t *testing.T) {
	b := native.Boundary{
		Contacts: &mocks.ContactService{
			MockFetchContactWithID: func(ctx context.Context, id string) (*native.Contact, error) { return nil, nil },
		},
		Social: &mocks.SocialService{
			MockGetEvent: func(ctx context.Context, eventID string) (*native.SocialEvent, error) { return nil, nil },
		},
	}
	f, rec := newFacade(t, b)

	_, err := f.FetchContactWithID(context.Background(), "c-404")
	be.Err(t, err, cmerr.ErrNotFound)
	_, err = f.GetEvent(context.Background(), "e-404")
	be.Err(t, err, cmerr.ErrNotFound)
	be.Equal(t, rec.Names(), []string{observe.CallStart, observe.CallOK, observe.CallStart, observe.CallOK})
}

func TestLinkingResolvedOnce(t *testing.T) {
	native.Unregister()
	t.Cleanup(native.Unregister)

	rec := &observe.Recorder{}
	f := New(WithObserver(rec))
	_, err := f.IsInitialized(context.Background())
	be.Err(t, err, cmerr.ErrLinking)

	native.Register(native.Boundary{Contacts: &mocks.ContactService{
		MockIsInitialized: func(ctx context.Context) (bool, error) { return true, nil },
	}})
	_, err = f.IsInitialized(context.Background())
	be.Err(t, err, cmerr.ErrLinking)

	// a fresh facade picks up the registered boundary
	ok, err := New().IsInitialized(context.Background())
	be.Err(t, err, nil)
	be.True(t, ok)

	linkFailed := 0
	for _, name := range rec.Names() {
		if name == observe.LinkFailed {
			linkFailed++
		}
	}
	be.Equal(t, linkFailed, 1)
}

func TestMissingServiceGroup(t *testing.T) {
	f, _ := newFacade(t, native.Boundary{Contacts: &mocks.ContactService{}})
	_, err := f.QuickSearch(context.Background(), "ana")
	be.Err(t, err, cmerr.ErrLinking)
}

func TestPageOverflowTrimmed(t *testing.T) {
	svc := &mocks.SocialService{
		MockGetFollowers: func(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error) {
			items := make([]native.FollowRelationship, limit+2)
			for i := range items {
				items[i] = native.FollowRelationship{Identifier: string(rune('a' + i))}
			}
			return native.Page[native.FollowRelationship]{Items: items, Total: 40, Skip: skip, Limit: limit}, nil
		},
	}
	f, rec := newFacade(t, native.Boundary{Social: svc})

	p, err := f.GetFollowers(context.Background(), "", 5, 3)
	be.Err(t, err, nil)
	be.Equal(t, len(p.Items), 3)
	be.Equal(t, p.Total, 40)
	be.Equal(t, p.Skip, 5)
	be.Equal(t, rec.Names(), []string{observe.CallStart, observe.PageOverflow, observe.CallOK})

	p, err = f.GetFollowers(context.Background(), "", 0, 0)
	be.Err(t, err, nil)
	be.Equal(t, p.Limit, config.DefaultLimits().Page)
}

func TestRecommendationsKeepNilContacts(t *testing.T) {
	svc := &mocks.RecommendationService{
		MockGetInviteRecommendations: func(ctx context.Context, limit int) ([]native.Recommendation, error) {
			return []native.Recommendation{
				{Contact: &native.Contact{Identifier: "c-1"}, Score: 0.9, Type: 0},
				{Contact: nil, Score: 0.5, Type: 1},
			}, nil
		},
	}
	f, _ := newFacade(t, native.Boundary{Recommendations: svc})
	rs, err := f.GetInviteRecommendations(context.Background(), 0)
	be.Err(t, err, nil)
	be.Equal(t, len(rs), 2)
	be.True(t, rs[1].Contact.IsEmpty())
	be.Equal(t, rs[1].Contact.PhoneNumbers, []contacts.PhoneNumber{})
}

func TestRecommendationBadTypeIsValidation(t *testing.T) {
	svc := &mocks.RecommendationService{
		MockGetInviteRecommendations: func(ctx context.Context, limit int) ([]native.Recommendation, error) {
			return []native.Recommendation{{Type: 9}}, nil
		},
	}
	f, rec := newFacade(t, native.Boundary{Recommendations: svc})
	_, err := f.GetInviteRecommendations(context.Background(), 1)
	be.Err(t, err, cmerr.ErrValidation)
	var e *cmerr.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Op, OpGetInviteRecommendations)
	be.Equal(t, rec.Names(), []string{observe.CallStart, observe.CallFailed})
}

func TestUpdateEventSendsOnlyPresentFields(t *testing.T) {
	var got native.UpdateEventRequest
	svc := &mocks.SocialService{
		MockUpdateEvent: func(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error) {
			got = req
			return native.EventActionResponse{Success: true, EventID: eventID, Updated: true}, nil
		},
	}
	f, _ := newFacade(t, native.Boundary{Social: svc})

	res, err := f.UpdateEvent(context.Background(), "e-1", social.UpdateEventRequest{Title: optional.Set("New")})
	be.Err(t, err, nil)
	be.True(t, res.Updated)
	title, ok := got.Title.Get()
	be.True(t, ok)
	be.Equal(t, title, "New")
	be.True(t, got.Description.IsAbsent())
	be.True(t, got.StartTime.IsAbsent())
	be.True(t, got.IsPublic.IsAbsent())
}

func TestAccessStatus(t *testing.T) {
	status := 2
	svc := &mocks.AuthorizationService{
		MockCheckAccessStatus: func(ctx context.Context) (int, error) { return status, nil },
		MockRequestContactsAccess: func(ctx context.Context) (native.AccessResult, error) {
			return native.AccessResult{Granted: true, Status: status}, nil
		},
	}
	f, _ := newFacade(t, native.Boundary{Authorization: svc})

	st, err := f.CheckAccessStatus(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, st, contacts.AccessLimitedAuthorized)
	res, err := f.RequestContactsAccess(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, res, AccessResult{Granted: true, Status: contacts.AccessLimitedAuthorized})

	status = 7
	_, err = f.CheckAccessStatus(context.Background())
	be.Err(t, err, cmerr.ErrValidation)
}

func TestConcurrentCallsSettleIndependently(t *testing.T) {
	svc := &mocks.ContactService{
		MockGetContactsCount: func(ctx context.Context) (int, error) { return 42, nil },
	}
	f, rec := newFacade(t, native.Boundary{Contacts: svc})

	var wg sync.WaitGroup
	counts := make([]int, 16)
	for i := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := f.GetContactsCount(context.Background())
			if err == nil {
				counts[i] = n
			}
		}()
	}
	wg.Wait()
	for _, n := range counts {
		be.Equal(t, n, 42)
	}
	ids := map[string]bool{}
	for _, ev := range rec.Events() {
		ids[ev.CallID] = true
	}
	be.Equal(t, len(ids), 16)
}

func TestHasContactChangedSendsNativeContact(t *testing.T) {
	var got native.Contact
	svc := &mocks.ContactService{
		MockHasContactChanged: func(ctx context.Context, c native.Contact) (bool, error) {
			got = c
			return true, nil
		},
	}
	f, _ := newFacade(t, native.Boundary{Contacts: svc})
	w := contacts.Empty()
	w.Identifier = "c-1"
	w.GivenName = "Ana"
	w.ImageData = "AQID"

	changed, err := f.HasContactChanged(context.Background(), w)
	be.Err(t, err, nil)
	be.True(t, changed)
	if diff := cmp.Diff([]byte{1, 2, 3}, got.ImageData); diff != "" {
		t.Errorf("image data mismatch (-want +got):\n%s", diff)
	}

	w.ImageData = "not base64!"
	_, err = f.HasContactChanged(context.Background(), w)
	be.Err(t, err, cmerr.ErrValidation)
}
