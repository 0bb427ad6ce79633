package native

import (
	"time"

	"github.com/spachava753/cmbridge/optional"
)

// Contact is the contact record held by the native SDK.
//
// Optional strings are empty when absent and instants are zero when absent.
type Contact struct {
	Identifier         string    `json:"identifier"`
	DisplayName        string    `json:"displayName,omitempty"`
	NamePrefix         string    `json:"namePrefix,omitempty"`
	GivenName          string    `json:"givenName,omitempty"`
	MiddleName         string    `json:"middleName,omitempty"`
	FamilyName         string    `json:"familyName,omitempty"`
	PreviousFamilyName string    `json:"previousFamilyName,omitempty"`
	NameSuffix         string    `json:"nameSuffix,omitempty"`
	Nickname           string    `json:"nickname,omitempty"`
	PhoneticGivenName  string    `json:"phoneticGivenName,omitempty"`
	PhoneticMiddleName string    `json:"phoneticMiddleName,omitempty"`
	PhoneticFamilyName string    `json:"phoneticFamilyName,omitempty"`
	OrganizationName   string    `json:"organizationName,omitempty"`
	DepartmentName     string    `json:"departmentName,omitempty"`
	JobTitle           string    `json:"jobTitle,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	Location           string    `json:"location,omitempty"`
	Birthday           time.Time `json:"birthday,omitzero"`
	ContactType        int       `json:"contactType,omitempty"`

	ImageURL           string `json:"imageUrl,omitempty"`
	ImageData          []byte `json:"imageData,omitempty"`
	ThumbnailImageData []byte `json:"thumbnailImageData,omitempty"`
	ImageDataAvailable bool   `json:"imageDataAvailable,omitempty"`

	PhoneNumbers            []PhoneNumber     `json:"phoneNumbers,omitempty"`
	EmailAddresses          []EmailAddress    `json:"emailAddresses,omitempty"`
	PostalAddresses         []PostalAddress   `json:"postalAddresses,omitempty"`
	Dates                   []ContactDate     `json:"dates,omitempty"`
	URLAddresses            []URLAddress      `json:"urlAddresses,omitempty"`
	SocialProfiles          []SocialProfile   `json:"socialProfiles,omitempty"`
	Relations               []ContactRelation `json:"relations,omitempty"`
	InstantMessageAddresses []InstantMessage  `json:"instantMessageAddresses,omitempty"`
	Avatars                 []Avatar          `json:"avatars,omitempty"`
	Interests               []string          `json:"interests,omitempty"`

	IsDeleted    bool      `json:"isDeleted,omitempty"`
	DirtyTime    time.Time `json:"dirtyTime,omitzero"`
	LastSyncedAt time.Time `json:"lastSyncedAt,omitzero"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`

	ParentContactID string `json:"parentContactId,omitempty"`
	SourceID        string `json:"sourceId,omitempty"`

	ContactSection string `json:"contactSection,omitempty"`
	MatchString    string `json:"matchString,omitempty"`
}

// PhoneNumber is a labeled phone number.
type PhoneNumber struct {
	ContactID string `json:"contactId,omitempty"`
	Value     string `json:"value"`
	Label     string `json:"type,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
}

// EmailAddress is a labeled email address.
type EmailAddress struct {
	ContactID string `json:"contactId,omitempty"`
	Value     string `json:"value"`
	Label     string `json:"type,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
}

// PostalAddress is a labeled postal address.
type PostalAddress struct {
	ContactID  string `json:"contactId,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Label      string `json:"type,omitempty"`
}

// ContactDate is a labeled date such as an anniversary.
type ContactDate struct {
	ContactID string    `json:"contactId,omitempty"`
	Date      time.Time `json:"date,omitzero"`
	Label     string    `json:"type,omitempty"`
}

// URLAddress is a labeled URL.
type URLAddress struct {
	ContactID string `json:"contactId,omitempty"`
	Value     string `json:"value"`
	Label     string `json:"type,omitempty"`
}

// SocialProfile is an account on a social service.
type SocialProfile struct {
	ContactID string `json:"contactId,omitempty"`
	Service   string `json:"service"`
	Username  string `json:"username,omitempty"`
	URL       string `json:"urlString,omitempty"`
}

// ContactRelation is a named relation such as "sister".
type ContactRelation struct {
	ContactID string `json:"contactId,omitempty"`
	Name      string `json:"name"`
	Label     string `json:"type,omitempty"`
}

// InstantMessage is an instant-message handle.
type InstantMessage struct {
	ContactID string `json:"contactId,omitempty"`
	Service   string `json:"service"`
	Username  string `json:"username"`
	Label     string `json:"type,omitempty"`
}

// Avatar is an inline image or a remote image URL.
type Avatar struct {
	ContactID string `json:"contactId,omitempty"`
	Data      []byte `json:"data,omitempty"`
	URL       string `json:"url,omitempty"`
}

// CanonicalContact is a server-issued identity in the social graph.
type CanonicalContact struct {
	Identifier         string         `json:"identifier"`
	OrganizationID     string         `json:"organizationId,omitempty"`
	OrganizationUserID string         `json:"organizationUserId,omitempty"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	FullName           string         `json:"fullName,omitempty"`
	AvatarURL          string         `json:"avatarUrl,omitempty"`
	IsActive           bool           `json:"isActive,omitempty"`
	CreatedAt          time.Time      `json:"createdAt,omitzero"`
	UpdatedAt          time.Time      `json:"updatedAt,omitzero"`
	Metadata           map[string]any `json:"contactMetadata,omitempty"`
}

// LocalCanonicalContact joins a device contact to its canonical identity.
type LocalCanonicalContact struct {
	Contact          *Contact         `json:"contact,omitempty"`
	ContactID        string           `json:"contactId,omitempty"`
	SourceContactID  string           `json:"sourceContactId,omitempty"`
	CanonicalContact CanonicalContact `json:"canonicalContact"`
}

// FollowRelationship is a directed follower to followed edge.
type FollowRelationship struct {
	Identifier   string            `json:"identifier"`
	FollowerID   string            `json:"followerId,omitempty"`
	FollowedID   string            `json:"followedId,omitempty"`
	UserID       string            `json:"userId,omitempty"`
	DisplayName  string            `json:"displayName,omitempty"`
	PhotoURL     string            `json:"photoUrl,omitempty"`
	Username     string            `json:"username,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	Website      string            `json:"website,omitempty"`
	CreatedAt    time.Time         `json:"createdAt,omitzero"`
	IsFollowing  bool              `json:"isFollowing,omitempty"`
	LocalContact *Contact          `json:"localContact,omitempty"`
	Follower     *CanonicalContact `json:"follower,omitempty"`
	Followed     *CanonicalContact `json:"followed,omitempty"`
	ContactID    string            `json:"contactId,omitempty"`
}

// FollowActionResponse is the result of a follow or unfollow.
type FollowActionResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	AlreadyFollowing bool   `json:"alreadyFollowing,omitempty"`
	WasFollowing     bool   `json:"wasFollowing,omitempty"`
}

// EventCreator summarizes who created an event.
type EventCreator struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SocialEvent is an event in the social feed.
type SocialEvent struct {
	Identifier         string            `json:"identifier"`
	OrganizationID     string            `json:"organizationId,omitempty"`
	CanonicalContactID string            `json:"canonicalContactId,omitempty"`
	EventType          string            `json:"eventType,omitempty"`
	Title              string            `json:"title,omitempty"`
	Description        string            `json:"description,omitempty"`
	Location           string            `json:"location,omitempty"`
	StartTime          time.Time         `json:"startTime,omitzero"`
	EndTime            time.Time         `json:"endTime,omitzero"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	IsPublic           bool              `json:"isPublic,omitempty"`
	CreatedAt          time.Time         `json:"createdAt,omitzero"`
	UpdatedAt          time.Time         `json:"updatedAt,omitzero"`
	UserID             string            `json:"userId,omitempty"`
	CreatedBy          *EventCreator     `json:"createdBy,omitempty"`
}

// EventActionResponse is the result of an event mutation.
type EventActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EventID string `json:"eventId,omitempty"`
	Created bool   `json:"created,omitempty"`
	Updated bool   `json:"updated,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// CreateEventRequest is the boundary input for a new event.
type CreateEventRequest struct {
	EventType   string            `json:"eventType"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Location    string            `json:"location,omitempty"`
	StartTime   time.Time         `json:"startTime,omitzero"`
	EndTime     time.Time         `json:"endTime,omitzero"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	IsPublic    bool              `json:"isPublic"`
}

// UpdateEventRequest is a partial update. Absent fields are left unchanged
// by the SDK; null fields are cleared.
type UpdateEventRequest struct {
	EventType   optional.Patch[string]            `json:"eventType,omitzero"`
	Title       optional.Patch[string]            `json:"title,omitzero"`
	Description optional.Patch[string]            `json:"description,omitzero"`
	Location    optional.Patch[string]            `json:"location,omitzero"`
	StartTime   optional.Patch[time.Time]         `json:"startTime,omitzero"`
	EndTime     optional.Patch[time.Time]         `json:"endTime,omitzero"`
	Metadata    optional.Patch[map[string]string] `json:"metadata,omitzero"`
	IsPublic    optional.Patch[bool]              `json:"isPublic,omitzero"`
}

// Recommendation is a scored suggestion computed by the SDK.
type Recommendation struct {
	Contact            *Contact `json:"contact,omitempty"`
	Score              float64  `json:"score"`
	Reason             string   `json:"reason,omitempty"`
	Type               int      `json:"type"`
	OrganizationUserID string   `json:"organizationUserId,omitempty"`
}

// SearchResult is one window of search matches.
type SearchResult struct {
	Contacts   []Contact `json:"contacts"`
	TotalCount int       `json:"totalCount"`
}

// Page is one window of a paginated SDK result.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// UserInfo identifies the signed-in user at initialization.
type UserInfo struct {
	UserID    string         `json:"userId"`
	FullName  string         `json:"fullName,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	AvatarURL string         `json:"avatarUrl,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Options tunes what the SDK syncs.
type Options struct {
	DataRestrictions            []string `json:"dataRestrictions,omitempty"`
	ShouldSyncDeletedContacts   bool     `json:"shouldSyncDeletedContacts,omitempty"`
	ShouldSyncContactImages     bool     `json:"shouldSyncContactImages,omitempty"`
	ShouldSyncContactThumbnails bool     `json:"shouldSyncContactThumbnails,omitempty"`
}

// AccessResult is the outcome of an access request.
type AccessResult struct {
	Granted bool `json:"granted"`
	Status  int  `json:"status"`
}
