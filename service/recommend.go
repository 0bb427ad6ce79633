package service

import (
	"context"

	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/recommend"
	"github.com/spachava753/cmbridge/social"
)

// GetInviteRecommendations returns contacts worth inviting, best first.
func (f *Facade) GetInviteRecommendations(ctx context.Context, limit int) ([]recommend.Recommendation, error) {
	var c checks
	c.nonNegative("limit", limit)
	if limit == 0 {
		limit = f.limits.Recommendation
	}
	return invoke(ctx, f, OpGetInviteRecommendations, c.err(),
		func(ctx context.Context, b native.Boundary) ([]native.Recommendation, error) {
			rs, err := b.Recommendations.GetInviteRecommendations(ctx, limit)
			return trim(f, OpGetInviteRecommendations, rs, limit), err
		}, recommend.List)
}

// GetContactsUsingApp returns device contacts that already use the app.
func (f *Facade) GetContactsUsingApp(ctx context.Context, limit int) ([]recommend.LocalCanonicalContact, error) {
	var c checks
	c.nonNegative("limit", limit)
	if limit == 0 {
		limit = f.limits.Recommendation
	}
	return invoke(ctx, f, OpGetContactsUsingApp, c.err(),
		func(ctx context.Context, b native.Boundary) ([]native.LocalCanonicalContact, error) {
			ls, err := b.Recommendations.GetContactsUsingApp(ctx, limit)
			return trim(f, OpGetContactsUsingApp, ls, limit), err
		}, recommend.LocalCanonicalList)
}

// GetUsersYouMightKnow returns app users connected to the current user's
// contacts.
func (f *Facade) GetUsersYouMightKnow(ctx context.Context, limit int) ([]social.CanonicalContact, error) {
	var c checks
	c.nonNegative("limit", limit)
	if limit == 0 {
		limit = f.limits.Recommendation
	}
	return invoke(ctx, f, OpGetUsersYouMightKnow, c.err(),
		func(ctx context.Context, b native.Boundary) ([]native.CanonicalContact, error) {
			cs, err := b.Recommendations.GetUsersYouMightKnow(ctx, limit)
			return trim(f, OpGetUsersYouMightKnow, cs, limit), err
		}, social.CanonicalContactList)
}
