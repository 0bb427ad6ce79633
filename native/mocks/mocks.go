// Package mocks contains mockable implementations of the native boundary
// interfaces. Each method calls the Mock function field of the same name.
package mocks

import (
	"context"

	"github.com/spachava753/cmbridge/native"
)

// ContactService is a mockable native.ContactService.
type ContactService struct {
	MockInitialize                 func(ctx context.Context, apiKey string, user native.UserInfo, token *string, opts native.Options) error
	MockIsInitialized              func(ctx context.Context) (bool, error)
	MockCurrentState               func(ctx context.Context) (string, error)
	MockReset                      func(ctx context.Context) error
	MockFetchContacts              func(ctx context.Context) ([]native.Contact, error)
	MockFetchContactsWithFieldType func(ctx context.Context, fieldType int) ([]native.Contact, error)
	MockFetchContactsWithBatch     func(ctx context.Context, batchSize, batchIndex int) ([]native.Contact, error)
	MockFetchContactWithID         func(ctx context.Context, id string) (*native.Contact, error)
	MockGetContactsCount           func(ctx context.Context) (int, error)
	MockEnableBackgroundSync       func(ctx context.Context) (bool, error)
	MockScheduleBackgroundSyncTask func(ctx context.Context) (bool, error)
	MockCheckHealth                func(ctx context.Context) (bool, error)
	MockHasContactChanged          func(ctx context.Context, c native.Contact) (bool, error)
	MockGetContactsForSync         func(ctx context.Context) ([]native.Contact, error)
	MockStartSync                  func(ctx context.Context, sourceID, userID string) (int, error)
	MockCancelSync                 func(ctx context.Context) (bool, error)
}

var _ native.ContactService = &ContactService{}

// Initialize calls MockInitialize.
func (m *ContactService) Initialize(ctx context.Context, apiKey string, user native.UserInfo, token *string, opts native.Options) error {
	return m.MockInitialize(ctx, apiKey, user, token, opts)
}

// IsInitialized calls MockIsInitialized.
func (m *ContactService) IsInitialized(ctx context.Context) (bool, error) {
	return m.MockIsInitialized(ctx)
}

// CurrentState calls MockCurrentState.
func (m *ContactService) CurrentState(ctx context.Context) (string, error) {
	return m.MockCurrentState(ctx)
}

// Reset calls MockReset.
func (m *ContactService) Reset(ctx context.Context) error {
	return m.MockReset(ctx)
}

// FetchContacts calls MockFetchContacts.
func (m *ContactService) FetchContacts(ctx context.Context) ([]native.Contact, error) {
	return m.MockFetchContacts(ctx)
}

// FetchContactsWithFieldType calls MockFetchContactsWithFieldType.
func (m *ContactService) FetchContactsWithFieldType(ctx context.Context, fieldType int) ([]native.Contact, error) {
	return m.MockFetchContactsWithFieldType(ctx, fieldType)
}

// FetchContactsWithBatch calls MockFetchContactsWithBatch.
func (m *ContactService) FetchContactsWithBatch(ctx context.Context, batchSize, batchIndex int) ([]native.Contact, error) {
	return m.MockFetchContactsWithBatch(ctx, batchSize, batchIndex)
}

// FetchContactWithID calls MockFetchContactWithID.
func (m *ContactService) FetchContactWithID(ctx context.Context, id string) (*native.Contact, error) {
	return m.MockFetchContactWithID(ctx, id)
}

// GetContactsCount calls MockGetContactsCount.
func (m *ContactService) GetContactsCount(ctx context.Context) (int, error) {
	return m.MockGetContactsCount(ctx)
}

// EnableBackgroundSync calls MockEnableBackgroundSync.
func (m *ContactService) EnableBackgroundSync(ctx context.Context) (bool, error) {
	return m.MockEnableBackgroundSync(ctx)
}

// ScheduleBackgroundSyncTask calls MockScheduleBackgroundSyncTask.
func (m *ContactService) ScheduleBackgroundSyncTask(ctx context.Context) (bool, error) {
	return m.MockScheduleBackgroundSyncTask(ctx)
}

// CheckHealth calls MockCheckHealth.
func (m *ContactService) CheckHealth(ctx context.Context) (bool, error) {
	return m.MockCheckHealth(ctx)
}

// HasContactChanged calls MockHasContactChanged.
func (m *ContactService) HasContactChanged(ctx context.Context, c native.Contact) (bool, error) {
	return m.MockHasContactChanged(ctx, c)
}

// GetContactsForSync calls MockGetContactsForSync.
func (m *ContactService) GetContactsForSync(ctx context.Context) ([]native.Contact, error) {
	return m.MockGetContactsForSync(ctx)
}

// StartSync calls MockStartSync.
func (m *ContactService) StartSync(ctx context.Context, sourceID, userID string) (int, error) {
	return m.MockStartSync(ctx, sourceID, userID)
}

// CancelSync calls MockCancelSync.
func (m *ContactService) CancelSync(ctx context.Context) (bool, error) {
	return m.MockCancelSync(ctx)
}

// SearchService is a mockable native.SearchService.
type SearchService struct {
	MockSearchContacts   func(ctx context.Context, query string, fieldType uint32, offset, limit int) (native.SearchResult, error)
	MockQuickSearch      func(ctx context.Context, query string) ([]native.Contact, error)
	MockGetContactsCount func(ctx context.Context) (int, error)
}

var _ native.SearchService = &SearchService{}

// SearchContacts calls MockSearchContacts.
func (m *SearchService) SearchContacts(ctx context.Context, query string, fieldType uint32, offset, limit int) (native.SearchResult, error) {
	return m.MockSearchContacts(ctx, query, fieldType, offset, limit)
}

// QuickSearch calls MockQuickSearch.
func (m *SearchService) QuickSearch(ctx context.Context, query string) ([]native.Contact, error) {
	return m.MockQuickSearch(ctx, query)
}

// GetContactsCount calls MockGetContactsCount.
func (m *SearchService) GetContactsCount(ctx context.Context) (int, error) {
	return m.MockGetContactsCount(ctx)
}

// AuthorizationService is a mockable native.AuthorizationService.
type AuthorizationService struct {
	MockRequestContactsAccess   func(ctx context.Context) (native.AccessResult, error)
	MockCheckAccessStatus       func(ctx context.Context) (int, error)
	MockHasContactsReadAccess   func(ctx context.Context) (bool, error)
	MockShouldShowSettingsAlert func(ctx context.Context) (bool, error)
	MockShowSettingsAlertView   func(ctx context.Context) error
}

var _ native.AuthorizationService = &AuthorizationService{}

// RequestContactsAccess calls MockRequestContactsAccess.
func (m *AuthorizationService) RequestContactsAccess(ctx context.Context) (native.AccessResult, error) {
	return m.MockRequestContactsAccess(ctx)
}

// CheckAccessStatus calls MockCheckAccessStatus.
func (m *AuthorizationService) CheckAccessStatus(ctx context.Context) (int, error) {
	return m.MockCheckAccessStatus(ctx)
}

// HasContactsReadAccess calls MockHasContactsReadAccess.
func (m *AuthorizationService) HasContactsReadAccess(ctx context.Context) (bool, error) {
	return m.MockHasContactsReadAccess(ctx)
}

// ShouldShowSettingsAlert calls MockShouldShowSettingsAlert.
func (m *AuthorizationService) ShouldShowSettingsAlert(ctx context.Context) (bool, error) {
	return m.MockShouldShowSettingsAlert(ctx)
}

// ShowSettingsAlertView calls MockShowSettingsAlertView.
func (m *AuthorizationService) ShowSettingsAlertView(ctx context.Context) error {
	return m.MockShowSettingsAlertView(ctx)
}

// SocialService is a mockable native.SocialService.
type SocialService struct {
	MockFollowUser        func(ctx context.Context, userID string) (native.FollowActionResponse, error)
	MockUnfollowUser      func(ctx context.Context, userID string) (native.FollowActionResponse, error)
	MockIsFollowingUser   func(ctx context.Context, userID string) (bool, error)
	MockGetFollowers      func(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error)
	MockGetFollowing      func(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error)
	MockGetMutualFollows  func(ctx context.Context, skip, limit int) (native.Page[native.CanonicalContact], error)
	MockCreateEvent       func(ctx context.Context, req native.CreateEventRequest) (native.EventActionResponse, error)
	MockGetEvent          func(ctx context.Context, eventID string) (*native.SocialEvent, error)
	MockUpdateEvent       func(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error)
	MockDeleteEvent       func(ctx context.Context, eventID string) (native.EventActionResponse, error)
	MockGetUserEvents     func(ctx context.Context, userID string, skip, limit int) (native.Page[native.SocialEvent], error)
	MockGetFeed           func(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error)
	MockGetUpcomingEvents func(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error)
	MockGetForYouFeed     func(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error)
}

var _ native.SocialService = &SocialService{}

// FollowUser calls MockFollowUser.
func (m *SocialService) FollowUser(ctx context.Context, userID string) (native.FollowActionResponse, error) {
	return m.MockFollowUser(ctx, userID)
}

// UnfollowUser calls MockUnfollowUser.
func (m *SocialService) UnfollowUser(ctx context.Context, userID string) (native.FollowActionResponse, error) {
	return m.MockUnfollowUser(ctx, userID)
}

// IsFollowingUser calls MockIsFollowingUser.
func (m *SocialService) IsFollowingUser(ctx context.Context, userID string) (bool, error) {
	return m.MockIsFollowingUser(ctx, userID)
}

// GetFollowers calls MockGetFollowers.
func (m *SocialService) GetFollowers(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error) {
	return m.MockGetFollowers(ctx, userID, skip, limit)
}

// GetFollowing calls MockGetFollowing.
func (m *SocialService) GetFollowing(ctx context.Context, userID string, skip, limit int) (native.Page[native.FollowRelationship], error) {
	return m.MockGetFollowing(ctx, userID, skip, limit)
}

// GetMutualFollows calls MockGetMutualFollows.
func (m *SocialService) GetMutualFollows(ctx context.Context, skip, limit int) (native.Page[native.CanonicalContact], error) {
	return m.MockGetMutualFollows(ctx, skip, limit)
}

// CreateEvent calls MockCreateEvent.
func (m *SocialService) CreateEvent(ctx context.Context, req native.CreateEventRequest) (native.EventActionResponse, error) {
	return m.MockCreateEvent(ctx, req)
}

// GetEvent calls MockGetEvent.
func (m *SocialService) GetEvent(ctx context.Context, eventID string) (*native.SocialEvent, error) {
	return m.MockGetEvent(ctx, eventID)
}

// UpdateEvent calls MockUpdateEvent.
func (m *SocialService) UpdateEvent(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error) {
	return m.MockUpdateEvent(ctx, eventID, req)
}

// DeleteEvent calls MockDeleteEvent.
func (m *SocialService) DeleteEvent(ctx context.Context, eventID string) (native.EventActionResponse, error) {
	return m.MockDeleteEvent(ctx, eventID)
}

// GetUserEvents calls MockGetUserEvents.
func (m *SocialService) GetUserEvents(ctx context.Context, userID string, skip, limit int) (native.Page[native.SocialEvent], error) {
	return m.MockGetUserEvents(ctx, userID, skip, limit)
}

// GetFeed calls MockGetFeed.
func (m *SocialService) GetFeed(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return m.MockGetFeed(ctx, skip, limit)
}

// GetUpcomingEvents calls MockGetUpcomingEvents.
func (m *SocialService) GetUpcomingEvents(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return m.MockGetUpcomingEvents(ctx, skip, limit)
}

// GetForYouFeed calls MockGetForYouFeed.
func (m *SocialService) GetForYouFeed(ctx context.Context, skip, limit int) (native.Page[native.SocialEvent], error) {
	return m.MockGetForYouFeed(ctx, skip, limit)
}

// RecommendationService is a mockable native.RecommendationService.
type RecommendationService struct {
	MockGetInviteRecommendations func(ctx context.Context, limit int) ([]native.Recommendation, error)
	MockGetContactsUsingApp      func(ctx context.Context, limit int) ([]native.LocalCanonicalContact, error)
	MockGetUsersYouMightKnow     func(ctx context.Context, limit int) ([]native.CanonicalContact, error)
}

var _ native.RecommendationService = &RecommendationService{}

// GetInviteRecommendations calls MockGetInviteRecommendations.
func (m *RecommendationService) GetInviteRecommendations(ctx context.Context, limit int) ([]native.Recommendation, error) {
	return m.MockGetInviteRecommendations(ctx, limit)
}

// GetContactsUsingApp calls MockGetContactsUsingApp.
func (m *RecommendationService) GetContactsUsingApp(ctx context.Context, limit int) ([]native.LocalCanonicalContact, error) {
	return m.MockGetContactsUsingApp(ctx, limit)
}

// GetUsersYouMightKnow calls MockGetUsersYouMightKnow.
func (m *RecommendationService) GetUsersYouMightKnow(ctx context.Context, limit int) ([]native.CanonicalContact, error) {
	return m.MockGetUsersYouMightKnow(ctx, limit)
}
