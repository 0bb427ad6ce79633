package social

import (
	"github.com/spachava753/cmbridge/contacts"
)

// CanonicalContact is the wire form of a server-issued identity.
type CanonicalContact struct {
	Identifier         string             `json:"identifier"`
	OrganizationID     string             `json:"organizationId"`
	OrganizationUserID string             `json:"organizationUserId"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	FullName           string             `json:"fullName"`
	AvatarURL          string             `json:"avatarUrl"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          contacts.Timestamp `json:"createdAt"`
	UpdatedAt          contacts.Timestamp `json:"updatedAt"`
	ContactMetadata    map[string]any     `json:"contactMetadata"`
}

// FollowRelationship is the wire form of a follow edge.
type FollowRelationship struct {
	Identifier   string             `json:"identifier"`
	FollowerID   string             `json:"followerId"`
	FollowedID   string             `json:"followedId"`
	UserID       string             `json:"userId"`
	DisplayName  string             `json:"displayName"`
	PhotoURL     string             `json:"photoUrl"`
	Username     string             `json:"username"`
	Bio          string             `json:"bio"`
	Website      string             `json:"website"`
	CreatedAt    contacts.Timestamp `json:"createdAt"`
	IsFollowing  bool               `json:"isFollowing"`
	LocalContact *contacts.Contact  `json:"localContact,omitempty"`
	Follower     *CanonicalContact  `json:"follower,omitempty"`
	Followed     *CanonicalContact  `json:"followed,omitempty"`
	ContactID    string             `json:"contactId"`
}

// FollowActionResponse is the wire result of a follow or unfollow.
type FollowActionResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	AlreadyFollowing bool   `json:"alreadyFollowing"`
	WasFollowing     bool   `json:"wasFollowing"`
}

// EventCreator is the creator summary attached to an event.
type EventCreator struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// SocialEvent is the wire form of a feed event. Undated events carry 0 for
// StartTime and EndTime.
type SocialEvent struct {
	Identifier         string             `json:"identifier"`
	OrganizationID     string             `json:"organizationId"`
	CanonicalContactID string             `json:"canonicalContactId"`
	EventType          string             `json:"eventType"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Location           string             `json:"location"`
	StartTime          contacts.Timestamp `json:"startTime"`
	EndTime            contacts.Timestamp `json:"endTime"`
	Metadata           map[string]string  `json:"metadata"`
	IsPublic           bool               `json:"isPublic"`
	CreatedAt          contacts.Timestamp `json:"createdAt"`
	UpdatedAt          contacts.Timestamp `json:"updatedAt"`
	UserID             string             `json:"userId"`
	CreatedBy          *EventCreator      `json:"createdBy,omitempty"`
}

// EventActionResponse is the wire result of an event mutation.
type EventActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"eventId"`
	Created bool   `json:"created"`
	Updated bool   `json:"updated"`
	Deleted bool   `json:"deleted"`
}

// Page is the paginated envelope. Total, Skip and Limit echo the native
// page; Items is never nil.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}
