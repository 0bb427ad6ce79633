package replay

import (
	"context"

	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/service"
)

// Boundary returns every native service backed by s. Fixture ops use the
// facade's operation names; the search service's count is answered by
// "searchContactsCount".
func (s *Store) Boundary() native.Boundary {
	return native.Boundary{
		Contacts:        contactService{s},
		Search:          searchService{s},
		Authorization:   authorizationService{s},
		Social:          socialService{s},
		Recommendations: recommendationService{s},
	}
}

type contactService struct{ s *Store }

var _ native.ContactService = contactService{}

func (c contactService) Initialize(ctx context.Context, apiKey string, user native.UserInfo, token *string, opts native.Options) error {
	_, err := answer[struct{}](ctx, c.s, service.OpInitialize, apiKey, user, token, opts)
	return err
}

func (c contactService) IsInitialized(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpIsInitialized)
}

func (c contactService) CurrentState(ctx context.Context) (string, error) {
	return answer[string](ctx, c.s, service.OpCurrentState)
}

func (c contactService) Reset(ctx context.Context) error {
	_, err := answer[struct{}](ctx, c.s, service.OpReset)
	return err
}

func (c contactService) FetchContacts(ctx context.Context) ([]native.Contact, error) {
	return answer[[]native.Contact](ctx, c.s, service.OpFetchContacts)
}

func (c contactService) FetchContactsWithFieldType(ctx context.Context, fieldType int) ([]native.Contact, error) {
	return answer[[]native.Contact](ctx, c.s, service.OpFetchContactsWithFieldType, fieldType)
}

func (c contactService) FetchContactsWithBatch(ctx context.Context, batchSize, batchIndex int) ([]native.Contact, error) {
	return answer[[]native.Contact](ctx, c.s, service.OpFetchContactsWithBatch, batchSize, batchIndex)
}

func (c contactService) FetchContactWithID(ctx context.Context, id string) (*native.Contact, error) {
	return answer[*native.Contact](ctx, c.s, service.OpFetchContactWithID, id)
}

func (c contactService) GetContactsCount(ctx context.Context) (int, error) {
	return answer[int](ctx, c.s, service.OpGetContactsCount)
}

func (c contactService) EnableBackgroundSync(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpEnableBackgroundSync)
}

func (c contactService) ScheduleBackgroundSyncTask(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpScheduleBackgroundSyncTask)
}

func (c contactService) CheckHealth(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpCheckHealth)
}

func (c contactService) HasContactChanged(ctx context.Context, contact native.Contact) (bool, error) {
	return answer[bool](ctx, c.s, service.OpHasContactChanged, contact.Identifier)
}

func (c contactService) GetContactsForSync(ctx context.Context) ([]native.Contact, error) {
	return answer[[]native.Contact](ctx, c.s, service.OpGetContactsForSync)
}

func (c contactService) StartSync(ctx context.Context, sourceID, userID string) (int, error) {
	return answer[int](ctx, c.s, service.OpStartSync, sourceID, userID)
}

func (c contactService) CancelSync(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpCancelSync)
}

type searchService struct{ s *Store }

var _ native.SearchService = searchService{}

func (c searchService) SearchContacts(ctx context.Context, query string, fieldType uint32, offset, limit int) (native.SearchResult, error) {
	return answer[native.SearchResult](ctx, c.s, service.OpSearchContacts, query, fieldType, offset, limit)
}

func (c searchService) QuickSearch(ctx context.Context, query string) ([]native.Contact, error) {
	return answer[[]native.Contact](ctx, c.s, service.OpQuickSearch, query)
}

func (c searchService) GetContactsCount(ctx context.Context) (int, error) {
	return answer[int](ctx, c.s, service.OpSearchContactsCount)
}

type authorizationService struct{ s *Store }

var _ native.AuthorizationService = authorizationService{}

func (c authorizationService) RequestContactsAccess(ctx context.Context) (native.AccessResult, error) {
	return answer[native.AccessResult](ctx, c.s, service.OpRequestContactsAccess)
}

func (c authorizationService) CheckAccessStatus(ctx context.Context) (int, error) {
	return answer[int](ctx, c.s, service.OpCheckAccessStatus)
}

func (c authorizationService) HasContactsReadAccess(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpHasContactsReadAccess)
}

func (c authorizationService) ShouldShowSettingsAlert(ctx context.Context) (bool, error) {
	return answer[bool](ctx, c.s, service.OpShouldShowSettingsAlert)
}

func (c authorizationService) ShowSettingsAlertView(ctx context.Context) error {
	_, err := answer[struct{}](ctx, c.s, service.OpShowSettingsAlertView)
	return err
}

type socialService struct{ s *Store }

var _ native.SocialService = socialService{}

func (c socialService) FollowUser(ctx context.Context, userID string) (native.FollowActionResponse, error) {
	return answer[native.FollowActionResponse](ctx, c.s, service.OpFollowUser, userID)
}

func (c socialService) UnfollowUser(ctx context.Context, userID string) (native.FollowActionResponse, error) {
	return answer[native.FollowActionResponse](ctx, c.s, service.OpUnfollowUser, userID)
}

func (c socialService) IsFollowingUser(ctx context.Context, userID string) (bool, error) {
	return answer[bool](ctx, c.s, service.OpIsFollowingUser, userID)
}

func (c socialService) GetFollowers(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error) {
	return answer[native.Page[native.FollowRelationship]](ctx, c.s, service.OpGetFollowers, userID, skip, limit)
}

func (c socialService) GetFollowing(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error) {
	return answer[native.Page[native.FollowRelationship]](ctx, c.s, service.OpGetFollowing, userID, skip, limit)
}

func (c socialService) GetMutualFollows(ctx context.Context, skip, limit int) (native.Page[native.CanonicalContact], error) {
	return answer[native.Page[native.CanonicalContact]](ctx, c.s, service.OpGetMutualFollows, skip, limit)
}

func (c socialService) CreateEvent(ctx context.Context, req native.CreateEventRequest) (native.EventActionResponse, error) {
	return answer[native.EventActionResponse](ctx, c.s, service.OpCreateEvent, req)
}

func (c socialService) GetEvent(ctx context.Context, eventID string) (*native.SocialEvent, error) {
	return answer[*native.SocialEvent](ctx, c.s, service.OpGetEvent, eventID)
}

func (c socialService) UpdateEvent(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error) {
	return answer[native.EventActionResponse](ctx, c.s, service.OpUpdateEvent, eventID, req)
}

func (c socialService) DeleteEvent(ctx context.Context, eventID string) (native.EventActionResponse, error) {
	return answer[native.EventActionResponse](ctx, c.s, service.OpDeleteEvent, eventID)
}

func (c socialService) GetUserEvents(ctx context.Context, userID string, skip, limit int) (native.Page[native.SocialEvent], error) {
	return answer[native.Page[native.SocialEvent]](ctx, c.s, service.OpGetUserEvents, userID, skip, limit)
}

func (c socialService) GetFeed(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return answer[native.Page[native.SocialEvent]](ctx, c.s, service.OpGetFeed, skip, limit)
}

func (c socialService) GetUpcomingEvents(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return answer[native.Page[native.SocialEvent]](ctx, c.s, service.OpGetUpcomingEvents, skip, limit)
}

func (c socialService) GetForYouFeed(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return answer[native.Page[native.SocialEvent]](ctx, c.s, service.OpGetForYouFeed, skip, limit)
}

type recommendationService struct{ s *Store }

var _ native.RecommendationService = recommendationService{}

func (c recommendationService) GetInviteRecommendations(ctx context.Context, limit int) ([]native.Recommendation, error) {
	return answer[[]native.Recommendation](ctx, c.s, service.OpGetInviteRecommendations, limit)
}

func (c recommendationService) GetContactsUsingApp(ctx context.Context, limit int) ([]native.LocalCanonicalContact, error) {
	return answer[[]native.LocalCanonicalContact](ctx, c.s, service.OpGetContactsUsingApp, limit)
}

func (c recommendationService) GetUsersYouMightKnow(ctx context.Context, limit int) ([]native.CanonicalContact, error) {
	return answer[[]native.CanonicalContact](ctx, c.s, service.OpGetUsersYouMightKnow, limit)
}
