// Package native describes the opaque contacts SDK that cmbridge talks to.
//
// The SDK is consumed through five service interfaces grouped in a Boundary.
// Platform glue (a mobile host, a replay fixture store, a test double)
// registers a Boundary once at startup with Register; the service facade
// resolves it lazily with Lookup.
//
// Every method may fail. Implementations return plain errors; the facade
// wraps them with operation-scoped codes.
package native

import (
	"context"
	"sync"
)

// ModuleName is the name the SDK registers under on the host.
const ModuleName = "contactsmanager"

// ContactService is the contact half of the SDK.
type ContactService interface {
	Initialize(ctx context.Context, apiKey string, user UserInfo, token *string, opts Options) error
	IsInitialized(ctx context.Context) (bool, error)
	CurrentState(ctx context.Context) (string, error)
	Reset(ctx context.Context) error
	FetchContacts(ctx context.Context) ([]Contact, error)
	FetchContactsWithFieldType(ctx context.Context, fieldType int) ([]Contact, error)
	FetchContactsWithBatch(ctx context.Context, batchSize, batchIndex int) ([]Contact, error)
	// FetchContactWithID returns nil and no error when nothing matches.
	FetchContactWithID(ctx context.Context, id string) (*Contact, error)
	GetContactsCount(ctx context.Context) (int, error)
	EnableBackgroundSync(ctx context.Context) (bool, error)
	ScheduleBackgroundSyncTask(ctx context.Context) (bool, error)
	CheckHealth(ctx context.Context) (bool, error)
	HasContactChanged(ctx context.Context, c Contact) (bool, error)
	GetContactsForSync(ctx context.Context) ([]Contact, error)
	StartSync(ctx context.Context, sourceID, userID string) (int, error)
	CancelSync(ctx context.Context) (bool, error)
}

// SearchService is the search half of the SDK. fieldType is a bitmask.
type SearchService interface {
	SearchContacts(ctx context.Context, query string, fieldType uint32, offset, limit int) (SearchResult, error)
	QuickSearch(ctx context.Context, query string) ([]Contact, error)
	GetContactsCount(ctx context.Context) (int, error)
}

// AuthorizationService wraps the platform contacts permission.
type AuthorizationService interface {
	RequestContactsAccess(ctx context.Context) (AccessResult, error)
	CheckAccessStatus(ctx context.Context) (int, error)
	HasContactsReadAccess(ctx context.Context) (bool, error)
	ShouldShowSettingsAlert(ctx context.Context) (bool, error)
	ShowSettingsAlertView(ctx context.Context) error
}

// SocialService is the follow graph and event feed.
type SocialService interface {
	FollowUser(ctx context.Context, userID string) (FollowActionResponse, error)
	UnfollowUser(ctx context.Context, userID string) (FollowActionResponse, error)
	IsFollowingUser(ctx context.Context, userID string) (bool, error)
	// GetFollowers and GetFollowing treat an empty userID as the current user.
	GetFollowers(ctx context.Context, userID string, skip, limit int) (Page[FollowRelationship], error)
	GetFollowing(ctx context.Context, userID string, skip, limit int) (Page[FollowRelationship], error)
	GetMutualFollows(ctx context.Context, skip, limit int) (Page[CanonicalContact], error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventActionResponse, error)
	// GetEvent returns nil and no error when nothing matches.
	GetEvent(ctx context.Context, eventID string) (*SocialEvent, error)
	UpdateEvent(ctx context.Context, eventID string, req UpdateEventRequest) (EventActionResponse, error)
	DeleteEvent(ctx context.Context, eventID string) (EventActionResponse, error)
	GetUserEvents(ctx context.Context, userID string, skip, limit int) (Page[SocialEvent], error)
	GetFeed(ctx context.Context, skip, limit int) (Page[SocialEvent], error)
	GetUpcomingEvents(ctx context.Context, skip, limit int) (Page[SocialEvent], error)
	GetForYouFeed(ctx context.Context, skip, limit int) (Page[SocialEvent], error)
}

// RecommendationService returns freshly computed recommendations.
type RecommendationService interface {
	GetInviteRecommendations(ctx context.Context, limit int) ([]Recommendation, error)
	GetContactsUsingApp(ctx context.Context, limit int) ([]LocalCanonicalContact, error)
	GetUsersYouMightKnow(ctx context.Context, limit int) ([]CanonicalContact, error)
}

// Boundary bundles the SDK services. A nil member means the host did not
// link that part of the SDK.
type Boundary struct {
	Contacts        ContactService
	Search          SearchService
	Authorization   AuthorizationService
	Social          SocialService
	Recommendations RecommendationService
}

// Missing returns the names of unlinked services.
func (b Boundary) Missing() []string {
	var out []string
	if b.Contacts == nil {
		out = append(out, "contacts")
	}
	if b.Search == nil {
		out = append(out, "search")
	}
	if b.Authorization == nil {
		out = append(out, "authorization")
	}
	if b.Social == nil {
		out = append(out, "social")
	}
	if b.Recommendations == nil {
		out = append(out, "recommendations")
	}
	return out
}

var (
	registryMu sync.RWMutex
	registered *Boundary
)

// Register installs the process-wide boundary. Later calls replace it.
func Register(b Boundary) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = &b
}

// Unregister removes the process-wide boundary.
func Unregister() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = nil
}

// Lookup returns the registered boundary and whether one exists.
func Lookup() (Boundary, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registered == nil {
		return Boundary{}, false
	}
	return *registered, true
}
