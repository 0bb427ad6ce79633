package contacts

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// SectionSentinel groups contacts with no usable name.
const SectionSentinel = "#"

// now is the clock used to stamp CreatedAt on Expand.
var now = time.Now

// SimplifiedContact is the UI projection of a contact.
type SimplifiedContact struct {
	ContactID          string         `json:"contactId"`
	DisplayName        string         `json:"displayName"`
	GivenName          string         `json:"givenName"`
	FamilyName         string         `json:"familyName"`
	PhoneNumbers       []LabeledPhone `json:"phoneNumbers,omitempty"`
	EmailAddresses     []LabeledEmail `json:"emailAddresses,omitempty"`
	ThumbnailImageData string         `json:"thumbnailImageData,omitempty"`
}

// LabeledPhone is a phone number with its label.
type LabeledPhone struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// LabeledEmail is an email address with its label.
type LabeledEmail struct {
	Label string `json:"label"`
	Email string `json:"email"`
}

// Simplify projects c onto a SimplifiedContact. Only the first phone number
// and the first email address are kept; empty collections leave the field
// unset. The thumbnail is the first avatar's data, else ThumbnailImageData.
func Simplify(c Contact) SimplifiedContact {
	s := SimplifiedContact{
		ContactID:   c.Identifier,
		DisplayName: c.DisplayName,
		GivenName:   c.GivenName,
		FamilyName:  c.FamilyName,
	}
	if len(c.PhoneNumbers) > 0 {
		p := c.PhoneNumbers[0]
		s.PhoneNumbers = []LabeledPhone{{Label: p.Type, Number: p.Value}}
	}
	if len(c.EmailAddresses) > 0 {
		e := c.EmailAddresses[0]
		s.EmailAddresses = []LabeledEmail{{Label: e.Type, Email: e.Value}}
	}
	if len(c.Avatars) > 0 && c.Avatars[0].Data != "" {
		s.ThumbnailImageData = c.Avatars[0].Data
	} else {
		s.ThumbnailImageData = c.ThumbnailImageData
	}
	return s
}

// SimplifyList applies Simplify to each contact. The result is never nil.
func SimplifyList(cs []Contact) []SimplifiedContact {
	out := make([]SimplifiedContact, 0, len(cs))
	for _, c := range cs {
		out = append(out, Simplify(c))
	}
	return out
}

// Expand rebuilds a Contact from s. The thumbnail becomes the single
// avatar, omitted collections are empty, IsDeleted is false, CreatedAt is the expansion instant, and the section
// and match string are recomputed.
func Expand(s SimplifiedContact) Contact {
	c := Contact{
		Identifier:  s.ContactID,
		DisplayName: s.DisplayName,
		GivenName:   s.GivenName,
		FamilyName:  s.FamilyName,
		CreatedAt:   TimestampOf(now()),
	}
	if s.ThumbnailImageData != "" {
		c.Avatars = []Avatar{{ContactID: s.ContactID, Data: s.ThumbnailImageData}}
	}
	for _, p := range s.PhoneNumbers {
		c.PhoneNumbers = append(c.PhoneNumbers, PhoneNumber{ContactID: s.ContactID, Value: p.Number, Type: p.Label})
	}
	for _, e := range s.EmailAddresses {
		c.EmailAddresses = append(c.EmailAddresses, EmailAddress{ContactID: s.ContactID, Value: e.Email, Type: e.Label})
	}
	c.ensureCollections()
	return c.WithDerived()
}

// ContactSection returns the grouping letter for a contact: the uppercased
// first character of family, else of given, else SectionSentinel.
func ContactSection(given, family string) string {
	for _, name := range []string{family, given} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		return string(unicode.ToUpper(r))
	}
	return SectionSentinel
}

// MatchString builds the search match string: given name, family name,
// each phone with non-digits stripped, each email lower-cased, joined by
// single spaces. Empty tokens are skipped.
func MatchString(given, family string, phones, emails []string) string {
	tokens := make([]string, 0, 2+len(phones)+len(emails))
	add := func(v string) {
		if v != "" {
			tokens = append(tokens, v)
		}
	}
	add(strings.TrimSpace(given))
	add(strings.TrimSpace(family))
	for _, p := range phones {
		add(DigitsOnly(p))
	}
	for _, e := range emails {
		add(NormalizeEmail(e))
	}
	return strings.Join(tokens, " ")
}

// DigitsOnly strips every non-digit from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
