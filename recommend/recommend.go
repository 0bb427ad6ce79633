// Package recommend converts recommendation records from the native SDK to
// the wire form.
//
// Recommendations are recomputed by the SDK on every call; this package only
// reshapes them. A recommendation without a resolved contact keeps its slot
// with the empty-record marker (see contacts.Empty) so list positions stay
// stable, and unknown recommendation types are rejected.
package recommend

import (
	"fmt"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/social"
)

// Type classifies a recommendation.
type Type int

const (
	// InviteRecommendation suggests inviting a contact to the app.
	InviteRecommendation Type = 0
	// AppUser marks a contact already using the app.
	AppUser Type = 1
	// PeopleYouMightKnow suggests a graph neighbor.
	PeopleYouMightKnow Type = 2
)

// ParseType validates a raw type ordinal. Values outside the known set are
// rejected rather than coerced.
func ParseType(raw int) (Type, error) {
	switch Type(raw) {
	case InviteRecommendation, AppUser, PeopleYouMightKnow:
		return Type(raw), nil
	default:
		return 0, cmerr.Invalid("type", fmt.Sprintf("unknown recommendation type %d", raw))
	}
}

// String returns the type name used by the SDK.
func (t Type) String() string {
	switch t {
	case InviteRecommendation:
		return "invite-recommendations"
	case AppUser:
		return "app-users"
	case PeopleYouMightKnow:
		return "people-you-might-know"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Recommendation is the wire form of a scored recommendation.
type Recommendation struct {
	Contact            contacts.Contact `json:"contact"`
	Score              float64          `json:"score"`
	Reason             string           `json:"reason"`
	Type               Type             `json:"type"`
	OrganizationUserID string           `json:"organizationUserId,omitempty"`
}

// LocalCanonicalContact is the wire form of a device contact joined to its
// canonical identity.
type LocalCanonicalContact struct {
	Contact          contacts.Contact        `json:"contact"`
	ContactID        string                  `json:"contactId"`
	SourceContactID  string                  `json:"sourceContactId"`
	CanonicalContact social.CanonicalContact `json:"canonicalContact"`
}

// ToWire converts one recommendation.
func ToWire(r native.Recommendation) (Recommendation, error) {
	typ, err := ParseType(r.Type)
	if err != nil {
		return Recommendation{}, err
	}
	c, err := contactOrEmpty(r.Contact)
	if err != nil {
		return Recommendation{}, err
	}
	return Recommendation{
		Contact:            c,
		Score:              r.Score,
		Reason:             r.Reason,
		Type:               typ,
		OrganizationUserID: r.OrganizationUserID,
	}, nil
}

// List converts recommendations in order. No item is dropped; the result
// has the same length as rs and is never nil.
func List(rs []native.Recommendation) ([]Recommendation, error) {
	out := make([]Recommendation, 0, len(rs))
	for i, r := range rs {
		w, err := ToWire(r)
		if err != nil {
			return nil, cmerr.Prefixed(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, w)
	}
	return out, nil
}

// LocalCanonicalToWire converts one local/canonical join record.
func LocalCanonicalToWire(l native.LocalCanonicalContact) (LocalCanonicalContact, error) {
	c, err := contactOrEmpty(l.Contact)
	if err != nil {
		return LocalCanonicalContact{}, err
	}
	cc, err := social.CanonicalContactToWire(l.CanonicalContact)
	if err != nil {
		return LocalCanonicalContact{}, cmerr.Prefixed(err, "canonicalContact")
	}
	return LocalCanonicalContact{
		Contact:          c,
		ContactID:        l.ContactID,
		SourceContactID:  l.SourceContactID,
		CanonicalContact: cc,
	}, nil
}

// LocalCanonicalList converts join records in order. The result is never nil.
func LocalCanonicalList(ls []native.LocalCanonicalContact) ([]LocalCanonicalContact, error) {
	out := make([]LocalCanonicalContact, 0, len(ls))
	for i, l := range ls {
		w, err := LocalCanonicalToWire(l)
		if err != nil {
			return nil, cmerr.Prefixed(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, w)
	}
	return out, nil
}

func contactOrEmpty(c *native.Contact) (contacts.Contact, error) {
	if c == nil {
		return contacts.Empty(), nil
	}
	w, err := contacts.ToWire(*c)
	if err != nil {
		return contacts.Contact{}, cmerr.Prefixed(err, "contact")
	}
	return w, nil
}
