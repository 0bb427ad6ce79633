package service

import (
	"context"
	"strings"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/social"
)

// FollowUser follows userID.
func (f *Facade) FollowUser(ctx context.Context, userID string) (social.FollowActionResponse, error) {
	var c checks
	c.required("userId", strings.TrimSpace(userID))
	return invoke(ctx, f, OpFollowUser, c.err(),
		func(ctx context.Context, b native.Boundary) (native.FollowActionResponse, error) {
			return b.Social.FollowUser(ctx, userID)
		}, followAction)
}

// UnfollowUser unfollows userID.
func (f *Facade) UnfollowUser(ctx context.Context, userID string) (social.FollowActionResponse, error) {
	var c checks
	c.required("userId", strings.TrimSpace(userID))
	return invoke(ctx, f, OpUnfollowUser, c.err(),
		func(ctx context.Context, b native.Boundary) (native.FollowActionResponse, error) {
			return b.Social.UnfollowUser(ctx, userID)
		}, followAction)
}

// IsFollowingUser reports whether the current user follows userID.
func (f *Facade) IsFollowingUser(ctx context.Context, userID string) (bool, error) {
	var c checks
	c.required("userId", strings.TrimSpace(userID))
	return invoke(ctx, f, OpIsFollowingUser, c.err(),
		func(ctx context.Context, b native.Boundary) (bool, error) {
			return b.Social.IsFollowingUser(ctx, userID)
		}, identity[bool])
}

// GetFollowers returns a page of userID's followers. An empty userID means
// the current user.
func (f *Facade) GetFollowers(ctx context.Context, userID string, skip, limit int) (social.Page[social.FollowRelationship], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return invoke(ctx, f, OpGetFollowers, c.err(),
		func(ctx context.Context, b native.Boundary) (native.Page[native.FollowRelationship], error) {
			p, err := b.Social.GetFollowers(ctx, userID, skip, limit)
			p.Items = trim(f, OpGetFollowers, p.Items, limit)
			return p, err
		}, social.FollowersPage)
}

// GetFollowing returns a page of the users userID follows. An empty userID
// means the current user.
func (f *Facade) GetFollowing(ctx context.Context, userID string, skip, limit int) (social.Page[social.FollowRelationship], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return invoke(ctx, f, OpGetFollowing, c.err(),
		func(ctx context.Context, b native.Boundary) (native.Page[native.FollowRelationship], error) {
			p, err := b.Social.GetFollowing(ctx, userID, skip, limit)
			p.Items = trim(f, OpGetFollowing, p.Items, limit)
			return p, err
		}, social.FollowersPage)
}

// GetMutualFollows returns a page of users who follow and are followed by
// the current user.
func (f *Facade) GetMutualFollows(ctx context.Context, skip, limit int) (social.Page[social.CanonicalContact], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return invoke(ctx, f, OpGetMutualFollows, c.err(),
		func(ctx context.Context, b native.Boundary) (native.Page[native.CanonicalContact], error) {
			p, err := b.Social.GetMutualFollows(ctx, skip, limit)
			p.Items = trim(f, OpGetMutualFollows, p.Items, limit)
			return p, err
		}, social.MutualFollowsPage)
}

// CreateEvent creates an event.
func (f *Facade) CreateEvent(ctx context.Context, req social.CreateEventRequest) (social.EventActionResponse, error) {
	var c checks
	n, err := social.BuildCreateEventRequest(req)
	c.add(err)
	return invoke(ctx, f, OpCreateEvent, c.err(),
		func(ctx context.Context, b native.Boundary) (native.EventActionResponse, error) {
			return b.Social.CreateEvent(ctx, n)
		}, eventAction)
}

// GetEvent returns one event. A missing event is reported as a not-found
// error.
func (f *Facade) GetEvent(ctx context.Context, eventID string) (social.SocialEvent, error) {
	var c checks
	c.required("eventId", strings.TrimSpace(eventID))
	return invoke(ctx, f, OpGetEvent, c.err(),
		func(ctx context.Context, b native.Boundary) (*native.SocialEvent, error) {
			return b.Social.GetEvent(ctx, eventID)
		},
		func(e *native.SocialEvent) (social.SocialEvent, error) {
			if e == nil {
				return social.SocialEvent{}, cmerr.NotFound(OpGetEvent, eventID)
			}
			return social.SocialEventToWire(*e)
		})
}

// UpdateEvent applies a partial update to eventID.
func (f *Facade) UpdateEvent(ctx context.Context, eventID string, req social.UpdateEventRequest) (social.EventActionResponse, error) {
	var c checks
	c.required("eventId", strings.TrimSpace(eventID))
	n, err := social.BuildUpdateEventRequest(req)
	c.add(err)
	return invoke(ctx, f, OpUpdateEvent, c.err(),
		func(ctx context.Context, b native.Boundary) (native.EventActionResponse, error) {
			return b.Social.UpdateEvent(ctx, eventID, n)
		}, eventAction)
}

// DeleteEvent deletes eventID.
func (f *Facade) DeleteEvent(ctx context.Context, eventID string) (social.EventActionResponse, error) {
	var c checks
	c.required("eventId", strings.TrimSpace(eventID))
	return invoke(ctx, f, OpDeleteEvent, c.err(),
		func(ctx context.Context, b native.Boundary) (native.EventActionResponse, error) {
			return b.Social.DeleteEvent(ctx, eventID)
		}, eventAction)
}

// GetUserEvents returns a page of events created by userID.
func (f *Facade) GetUserEvents(ctx context.Context, userID string, skip, limit int) (social.Page[social.SocialEvent], error) {
	var c checks
	c.required("userId", strings.TrimSpace(userID))
	limit = window(&c, skip, limit, f.limits.Page)
	return f.events(ctx, OpGetUserEvents, c.err(), limit, func(ctx context.Context, s native.SocialService) (native.Page[native.SocialEvent], error) {
		return s.GetUserEvents(ctx, userID, skip, limit)
	})
}

// GetFeed returns a page of the current user's feed.
func (f *Facade) GetFeed(ctx context.Context, skip, limit int) (social.Page[social.SocialEvent], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return f.events(ctx, OpGetFeed, c.err(), limit, func(ctx context.Context, s native.SocialService) (native.Page[native.SocialEvent], error) {
		return s.GetFeed(ctx, skip, limit)
	})
}

// GetUpcomingEvents returns a page of events that have not started yet.
func (f *Facade) GetUpcomingEvents(ctx context.Context, skip, limit int) (social.Page[social.SocialEvent], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return f.events(ctx, OpGetUpcomingEvents, c.err(), limit, func(ctx context.Context, s native.SocialService) (native.Page[native.SocialEvent], error) {
		return s.GetUpcomingEvents(ctx, skip, limit)
	})
}

// GetForYouFeed returns a page of the recommended feed.
func (f *Facade) GetForYouFeed(ctx context.Context, skip, limit int) (social.Page[social.SocialEvent], error) {
	var c checks
	limit = window(&c, skip, limit, f.limits.Page)
	return f.events(ctx, OpGetForYouFeed, c.err(), limit, func(ctx context.Context, s native.SocialService) (native.Page[native.SocialEvent], error) {
		return s.GetForYouFeed(ctx, skip, limit)
	})
}

func (f *Facade) events(
	ctx context.Context,
	op string,
	check error,
	limit int,
	fetch func(context.Context, native.SocialService) (native.Page[native.SocialEvent], error),
) (social.Page[social.SocialEvent], error) {
	return invoke(ctx, f, op, check,
		func(ctx context.Context, b native.Boundary) (native.Page[native.SocialEvent], error) {
			p, err := fetch(ctx, b.Social)
			p.Items = trim(f, op, p.Items, limit)
			return p, err
		}, social.EventsPage)
}

func followAction(r native.FollowActionResponse) (social.FollowActionResponse, error) {
	return social.FollowActionToWire(r), nil
}

func eventAction(r native.EventActionResponse) (social.EventActionResponse, error) {
	return social.EventActionToWire(r), nil
}
