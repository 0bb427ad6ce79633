package contacts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestExpandObrien(t *testing.T) {
	fixClock(t, time.UnixMilli(1700000000000))

	c := Expand(SimplifiedContact{
		ContactID:      "x",
		FamilyName:     "O'Brien",
		PhoneNumbers:   []LabeledPhone{},
		EmailAddresses: []LabeledEmail{},
	})
	be.Equal(t, c.ContactSection, "O")
	be.Equal(t, c.MatchString, "O'Brien")
	be.Equal(t, c.Identifier, "x")
	be.True(t, !c.IsDeleted)
	be.Equal(t, c.CreatedAt, Timestamp(1700000000000))
	be.Equal(t, len(c.PostalAddresses), 0)
	be.True(t, c.PostalAddresses != nil)
	be.True(t, c.Interests != nil)
}

func TestExpandIsDeterministic(t *testing.T) {
	s := SimplifiedContact{
		ContactID:      "y",
		GivenName:      "ana",
		PhoneNumbers:   []LabeledPhone{{Label: "mobile", Number: "+1 (555) 010-2000"}},
		EmailAddresses: []LabeledEmail{{Label: "home", Email: " Ana@Example.COM"}},
	}
	first := Expand(s)
	second := Expand(s)
	// CreatedAt is stamped per expansion.
	second.CreatedAt = first.CreatedAt
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
	be.Equal(t, first.ContactSection, "A")
	be.Equal(t, first.MatchString, "ana 15550102000 ana@example.com")
	be.Equal(t, first.PhoneNumbers[0].ContactID, "y")
	be.Equal(t, first.PhoneNumbers[0].Type, "mobile")
}

func TestExpandThumbnailBecomesAvatar(t *testing.T) {
	c := Expand(SimplifiedContact{ContactID: "x", GivenName: "Ana", ThumbnailImageData: "aGk="})
	be.Equal(t, c.Avatars, []Avatar{{ContactID: "x", Data: "aGk="}})
	be.Equal(t, c.ThumbnailImageData, "")
	be.Equal(t, Simplify(c).ThumbnailImageData, "aGk=")

	c = Expand(SimplifiedContact{ContactID: "y"})
	be.Equal(t, len(c.Avatars), 0)
	be.True(t, c.Avatars != nil)
}

func TestContactSection(t *testing.T) {
	be.Equal(t, ContactSection("ana", "ruiz"), "R")
	be.Equal(t, ContactSection("ana", ""), "A")
	be.Equal(t, ContactSection("", ""), "#")
	be.Equal(t, ContactSection("  ", " "), "#")
	be.Equal(t, ContactSection("", "élan"), "É")
}

func TestSimplifyTakesFirstItems(t *testing.T) {
	c := Contact{
		Identifier:     "c-1",
		DisplayName:    "Ana Ruiz",
		GivenName:      "Ana",
		FamilyName:     "Ruiz",
		PhoneNumbers:   []PhoneNumber{{Value: "1", Type: "mobile"}, {Value: "2"}},
		EmailAddresses: []EmailAddress{{Value: "a@x.io", Type: "work"}, {Value: "b@x.io"}},
		Avatars:        []Avatar{{Data: "AAEC"}},
	}
	s := Simplify(c)
	be.Equal(t, s.PhoneNumbers, []LabeledPhone{{Label: "mobile", Number: "1"}})
	be.Equal(t, s.EmailAddresses, []LabeledEmail{{Label: "work", Email: "a@x.io"}})
	be.Equal(t, s.ThumbnailImageData, "AAEC")
}

func TestSimplifyEmptyCollectionsOmitFields(t *testing.T) {
	s := Simplify(Empty())
	be.True(t, s.PhoneNumbers == nil)
	be.True(t, s.EmailAddresses == nil)

	data, err := json.Marshal(Simplify(Contact{Identifier: "z", ThumbnailImageData: "AQID"}))
	be.Err(t, err, nil)
	be.Equal(t, string(data), `{"contactId":"z","displayName":"","givenName":"","familyName":"","thumbnailImageData":"AQID"}`)
}

func TestSimplifyExpandDerivedFields(t *testing.T) {
	c, err := ToWire(fullContact())
	be.Err(t, err, nil)
	e := Expand(Simplify(c))
	be.Equal(t, e.ContactSection, "R")
	be.Equal(t, e.MatchString, "Ana Ruiz 15550102000 ana@example.com")
}

func TestWithDerivedUsesAllItems(t *testing.T) {
	c := Contact{
		GivenName:      "Kim",
		PhoneNumbers:   []PhoneNumber{{Value: "12-34"}, {Value: "ext."}},
		EmailAddresses: []EmailAddress{{Value: "K@X.IO"}, {Value: "k2@x.io"}},
	}.WithDerived()
	be.Equal(t, c.ContactSection, "K")
	be.Equal(t, c.MatchString, "Kim 1234 k@x.io k2@x.io")
}
