package social

import (
	"fmt"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
)

// CanonicalContactToWire converts a canonical contact.
func CanonicalContactToWire(c native.CanonicalContact) (CanonicalContact, error) {
	if c.Identifier == "" {
		return CanonicalContact{}, cmerr.Invalid("identifier", "is required")
	}
	meta := make(map[string]any, len(c.Metadata))
	for k, v := range c.Metadata {
		meta[k] = v
	}
	return CanonicalContact{
		Identifier:         c.Identifier,
		OrganizationID:     c.OrganizationID,
		OrganizationUserID: c.OrganizationUserID,
		Email:              c.Email,
		Phone:              c.Phone,
		FullName:           c.FullName,
		AvatarURL:          c.AvatarURL,
		IsActive:           c.IsActive,
		CreatedAt:          contacts.TimestampOf(c.CreatedAt),
		UpdatedAt:          contacts.TimestampOf(c.UpdatedAt),
		ContactMetadata:    meta,
	}, nil
}

// CanonicalContactList converts canonical contacts in order. The result is
// never nil.
func CanonicalContactList(cs []native.CanonicalContact) ([]CanonicalContact, error) {
	return convertAll(cs, CanonicalContactToWire)
}

// FollowRelationshipToWire converts a follow edge, including its optional
// local contact and endpoint identities.
func FollowRelationshipToWire(r native.FollowRelationship) (FollowRelationship, error) {
	if r.Identifier == "" {
		return FollowRelationship{}, cmerr.Invalid("identifier", "is required")
	}
	w := FollowRelationship{
		Identifier:  r.Identifier,
		FollowerID:  r.FollowerID,
		FollowedID:  r.FollowedID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
		Username:    r.Username,
		Bio:         r.Bio,
		Website:     r.Website,
		CreatedAt:   contacts.TimestampOf(r.CreatedAt),
		IsFollowing: r.IsFollowing,
		ContactID:   r.ContactID,
	}
	if r.LocalContact != nil {
		lc, err := contacts.ToWire(*r.LocalContact)
		if err != nil {
			return FollowRelationship{}, cmerr.Prefixed(err, "localContact")
		}
		w.LocalContact = &lc
	}
	if r.Follower != nil {
		f, err := CanonicalContactToWire(*r.Follower)
		if err != nil {
			return FollowRelationship{}, cmerr.Prefixed(err, "follower")
		}
		w.Follower = &f
	}
	if r.Followed != nil {
		f, err := CanonicalContactToWire(*r.Followed)
		if err != nil {
			return FollowRelationship{}, cmerr.Prefixed(err, "followed")
		}
		w.Followed = &f
	}
	return w, nil
}

// SocialEventToWire converts an event. Unset start and end instants become
// the 0 sentinel.
func SocialEventToWire(e native.SocialEvent) (SocialEvent, error) {
	if e.Identifier == "" {
		return SocialEvent{}, cmerr.Invalid("identifier", "is required")
	}
	meta := make(map[string]string, len(e.Metadata))
	for k, v := range e.Metadata {
		meta[k] = v
	}
	w := SocialEvent{
		Identifier:         e.Identifier,
		OrganizationID:     e.OrganizationID,
		CanonicalContactID: e.CanonicalContactID,
		EventType:          e.EventType,
		Title:              e.Title,
		Description:        e.Description,
		Location:           e.Location,
		StartTime:          contacts.TimestampOf(e.StartTime),
		EndTime:            contacts.TimestampOf(e.EndTime),
		Metadata:           meta,
		IsPublic:           e.IsPublic,
		CreatedAt:          contacts.TimestampOf(e.CreatedAt),
		UpdatedAt:          contacts.TimestampOf(e.UpdatedAt),
		UserID:             e.UserID,
	}
	if e.CreatedBy != nil {
		w.CreatedBy = &EventCreator{Name: e.CreatedBy.Name, AvatarURL: e.CreatedBy.AvatarURL}
	}
	return w, nil
}

// FollowActionToWire converts a follow or unfollow result.
func FollowActionToWire(r native.FollowActionResponse) FollowActionResponse {
	return FollowActionResponse{
		Success:          r.Success,
		Message:          r.Message,
		AlreadyFollowing: r.AlreadyFollowing,
		WasFollowing:     r.WasFollowing,
	}
}

// EventActionToWire converts an event mutation result.
func EventActionToWire(r native.EventActionResponse) EventActionResponse {
	return EventActionResponse{
		Success: r.Success,
		Message: r.Message,
		EventID: r.EventID,
		Created: r.Created,
		Updated: r.Updated,
		Deleted: r.Deleted,
	}
}

// WrapPage converts every item of a native page and echoes Total, Skip and
// Limit unchanged.
func WrapPage[N, W any](p native.Page[N], conv func(N) (W, error)) (Page[W], error) {
	items, err := convertAll(p.Items, conv)
	if err != nil {
		return Page[W]{}, cmerr.Prefixed(err, "items")
	}
	return Page[W]{Items: items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}, nil
}

// FollowersPage wraps a page of follow relationships. It serves both
// followers and following.
func FollowersPage(p native.Page[native.FollowRelationship]) (Page[FollowRelationship], error) {
	return WrapPage(p, FollowRelationshipToWire)
}

// MutualFollowsPage wraps a page of mutual follows.
func MutualFollowsPage(p native.Page[native.CanonicalContact]) (Page[CanonicalContact], error) {
	return WrapPage(p, CanonicalContactToWire)
}

// EventsPage wraps a page of events.
func EventsPage(p native.Page[native.SocialEvent]) (Page[SocialEvent], error) {
	return WrapPage(p, SocialEventToWire)
}

func convertAll[N, W any](in []N, conv func(N) (W, error)) ([]W, error) {
	out := make([]W, 0, len(in))
	for i, item := range in {
		w, err := conv(item)
		if err != nil {
			return nil, cmerr.Prefixed(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, w)
	}
	return out, nil
}
