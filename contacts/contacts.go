package contacts

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// SchemaVersion is the version of the canonical wire schema produced by
// ToWire. Older shapes are accepted on decode and upgraded.
const SchemaVersion = 2

// Timestamp is an instant on the wire: milliseconds since the Unix epoch.
// Zero is the sentinel for "no timestamp".
type Timestamp float64

// TimestampOf converts t to a Timestamp. The zero time maps to 0, and so
// does the Unix epoch itself.
func TimestampOf(t time.Time) Timestamp {
	if t.IsZero() {
		return 0
	}
	return Timestamp(t.UnixMilli())
}

// Time converts ts back to a UTC time. The sentinel maps to the zero time.
func (ts Timestamp) Time() time.Time {
	if ts == 0 || math.IsNaN(float64(ts)) {
		return time.Time{}
	}
	return time.UnixMilli(int64(ts)).UTC()
}

// IsZero reports whether ts is the sentinel.
func (ts Timestamp) IsZero() bool {
	return ts == 0
}

// UnmarshalJSON accepts a number, an RFC 3339 string, or null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*ts = 0
			return nil
		}
		if ms, err := strconv.ParseFloat(s, 64); err == nil {
			*ts = Timestamp(ms)
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("contacts: timestamp %q: %w", s, err)
		}
		*ts = TimestampOf(t)
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*ts = Timestamp(ms)
	return nil
}

// Contact is the wire form of a contact record.
//
// Strings are never null. Timestamps use the 0 sentinel. Collections are
// always arrays. Image fields hold standard base64 text.
type Contact struct {
	Identifier         string    `json:"identifier"`
	DisplayName        string    `json:"displayName"`
	NamePrefix         string    `json:"namePrefix"`
	GivenName          string    `json:"givenName"`
	MiddleName         string    `json:"middleName"`
	FamilyName         string    `json:"familyName"`
	PreviousFamilyName string    `json:"previousFamilyName"`
	NameSuffix         string    `json:"nameSuffix"`
	Nickname           string    `json:"nickname"`
	PhoneticGivenName  string    `json:"phoneticGivenName"`
	PhoneticMiddleName string    `json:"phoneticMiddleName"`
	PhoneticFamilyName string    `json:"phoneticFamilyName"`
	OrganizationName   string    `json:"organizationName"`
	DepartmentName     string    `json:"departmentName"`
	JobTitle           string    `json:"jobTitle"`
	Notes              string    `json:"notes"`
	Bio                string    `json:"bio"`
	Location           string    `json:"location"`
	Birthday           Timestamp `json:"birthday"`
	ContactType        int       `json:"contactType"`

	ImageURL           string `json:"imageUrl"`
	ImageData          string `json:"imageData"`
	ThumbnailImageData string `json:"thumbnailImageData"`
	ImageDataAvailable bool   `json:"imageDataAvailable"`

	PhoneNumbers            []PhoneNumber     `json:"phoneNumbers"`
	EmailAddresses          []EmailAddress    `json:"emailAddresses"`
	PostalAddresses         []PostalAddress   `json:"postalAddresses"`
	Dates                   []ContactDate     `json:"dates"`
	URLAddresses            []URLAddress      `json:"urlAddresses"`
	SocialProfiles          []SocialProfile   `json:"socialProfiles"`
	Relations               []ContactRelation `json:"relations"`
	InstantMessageAddresses []InstantMessage  `json:"instantMessageAddresses"`
	Avatars                 []Avatar          `json:"avatars"`
	Interests               []string          `json:"interests"`

	IsDeleted    bool      `json:"isDeleted"`
	DirtyTime    Timestamp `json:"dirtyTime"`
	LastSyncedAt Timestamp `json:"lastSyncedAt"`
	CreatedAt    Timestamp `json:"createdAt"`

	ParentContactID string `json:"parentContactId"`
	SourceID        string `json:"sourceId"`

	ContactSection string `json:"contactSection"`
	MatchString    string `json:"matchString"`
}

// PhoneNumber is a phone number item.
type PhoneNumber struct {
	ContactID string `json:"contactId"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	Emoji     string `json:"emoji"`
}

// EmailAddress is an email address item.
type EmailAddress struct {
	ContactID string `json:"contactId"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	Emoji     string `json:"emoji"`
}

// PostalAddress is a postal address item.
type PostalAddress struct {
	ContactID  string `json:"contactId"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Type       string `json:"type"`
}

// ContactDate is a dated item such as an anniversary.
type ContactDate struct {
	ContactID string    `json:"contactId"`
	Date      Timestamp `json:"date"`
	Type      string    `json:"type"`
}

// URLAddress is a URL item.
type URLAddress struct {
	ContactID string `json:"contactId"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// SocialProfile is a social service account item.
type SocialProfile struct {
	ContactID string `json:"contactId"`
	Service   string `json:"service"`
	Username  string `json:"username"`
	URLString string `json:"urlString"`
}

// ContactRelation is a relation item.
type ContactRelation struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// InstantMessage is an instant-message handle item.
type InstantMessage struct {
	ContactID string `json:"contactId"`
	Service   string `json:"service"`
	Username  string `json:"username"`
	Type      string `json:"type"`
}

// Avatar is an avatar item. MimeType is sniffed from Data and is output only.
type Avatar struct {
	ContactID string `json:"contactId"`
	Data      string `json:"data"`
	URL       string `json:"url"`
	MimeType  string `json:"mimeType"`
}

// IsEmpty reports whether c is the empty-record marker used where a record
// slot must be present but no contact was resolved.
func (c Contact) IsEmpty() bool {
	return c.Identifier == ""
}

// Empty returns the empty-record marker: no identifier, every collection an
// empty array.
func Empty() Contact {
	var c Contact
	c.ensureCollections()
	return c
}

// WithDerived returns a copy of c with ContactSection and MatchString
// recomputed from its names, phone numbers and email addresses.
func (c Contact) WithDerived() Contact {
	phones := make([]string, 0, len(c.PhoneNumbers))
	for _, p := range c.PhoneNumbers {
		phones = append(phones, p.Value)
	}
	emails := make([]string, 0, len(c.EmailAddresses))
	for _, e := range c.EmailAddresses {
		emails = append(emails, e.Value)
	}
	c.ContactSection = ContactSection(c.GivenName, c.FamilyName)
	c.MatchString = MatchString(c.GivenName, c.FamilyName, phones, emails)
	return c
}

func (c *Contact) ensureCollections() {
	if c.PhoneNumbers == nil {
		c.PhoneNumbers = []PhoneNumber{}
	}
	if c.EmailAddresses == nil {
		c.EmailAddresses = []EmailAddress{}
	}
	if c.PostalAddresses == nil {
		c.PostalAddresses = []PostalAddress{}
	}
	if c.Dates == nil {
		c.Dates = []ContactDate{}
	}
	if c.URLAddresses == nil {
		c.URLAddresses = []URLAddress{}
	}
	if c.SocialProfiles == nil {
		c.SocialProfiles = []SocialProfile{}
	}
	if c.Relations == nil {
		c.Relations = []ContactRelation{}
	}
	if c.InstantMessageAddresses == nil {
		c.InstantMessageAddresses = []InstantMessage{}
	}
	if c.Avatars == nil {
		c.Avatars = []Avatar{}
	}
	if c.Interests == nil {
		c.Interests = []string{}
	}
}
