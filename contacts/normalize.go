package contacts

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/native"
)

// ToWire converts a native contact into its wire form.
//
// Detail items echo their own contactId, or the parent identifier when the
// native item carries none. Labels are copied as-is, including empty ones.
// Image bytes are base64-encoded here and nowhere else.
func ToWire(c native.Contact) (Contact, error) {
	if c.Identifier == "" {
		return Contact{}, cmerr.Invalid("identifier", "is required")
	}
	id := c.Identifier
	w := Contact{
		Identifier:         c.Identifier,
		DisplayName:        c.DisplayName,
		NamePrefix:         c.NamePrefix,
		GivenName:          c.GivenName,
		MiddleName:         c.MiddleName,
		FamilyName:         c.FamilyName,
		PreviousFamilyName: c.PreviousFamilyName,
		NameSuffix:         c.NameSuffix,
		Nickname:           c.Nickname,
		PhoneticGivenName:  c.PhoneticGivenName,
		PhoneticMiddleName: c.PhoneticMiddleName,
		PhoneticFamilyName: c.PhoneticFamilyName,
		OrganizationName:   c.OrganizationName,
		DepartmentName:     c.DepartmentName,
		JobTitle:           c.JobTitle,
		Notes:              c.Notes,
		Bio:                c.Bio,
		Location:           c.Location,
		Birthday:           TimestampOf(c.Birthday),
		ContactType:        c.ContactType,
		ImageURL:           c.ImageURL,
		ImageData:          encode(c.ImageData),
		ThumbnailImageData: encode(c.ThumbnailImageData),
		ImageDataAvailable: c.ImageDataAvailable,
		Interests:          append([]string{}, c.Interests...),
		IsDeleted:          c.IsDeleted,
		DirtyTime:          TimestampOf(c.DirtyTime),
		LastSyncedAt:       TimestampOf(c.LastSyncedAt),
		CreatedAt:          TimestampOf(c.CreatedAt),
		ParentContactID:    c.ParentContactID,
		SourceID:           c.SourceID,
		ContactSection:     c.ContactSection,
		MatchString:        c.MatchString,
	}

	w.PhoneNumbers = make([]PhoneNumber, 0, len(c.PhoneNumbers))
	for _, p := range c.PhoneNumbers {
		w.PhoneNumbers = append(w.PhoneNumbers, PhoneNumber{ContactID: owner(p.ContactID, id), Value: p.Value, Type: p.Label, Emoji: p.Emoji})
	}
	w.EmailAddresses = make([]EmailAddress, 0, len(c.EmailAddresses))
	for _, e := range c.EmailAddresses {
		w.EmailAddresses = append(w.EmailAddresses, EmailAddress{ContactID: owner(e.ContactID, id), Value: e.Value, Type: e.Label, Emoji: e.Emoji})
	}
	w.PostalAddresses = make([]PostalAddress, 0, len(c.PostalAddresses))
	for _, a := range c.PostalAddresses {
		w.PostalAddresses = append(w.PostalAddresses, PostalAddress{
			ContactID:  owner(a.ContactID, id),
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Type:       a.Label,
		})
	}
	w.Dates = make([]ContactDate, 0, len(c.Dates))
	for _, d := range c.Dates {
		w.Dates = append(w.Dates, ContactDate{ContactID: owner(d.ContactID, id), Date: TimestampOf(d.Date), Type: d.Label})
	}
	w.URLAddresses = make([]URLAddress, 0, len(c.URLAddresses))
	for _, u := range c.URLAddresses {
		w.URLAddresses = append(w.URLAddresses, URLAddress{ContactID: owner(u.ContactID, id), Value: u.Value, Type: u.Label})
	}
	w.SocialProfiles = make([]SocialProfile, 0, len(c.SocialProfiles))
	for _, s := range c.SocialProfiles {
		w.SocialProfiles = append(w.SocialProfiles, SocialProfile{ContactID: owner(s.ContactID, id), Service: s.Service, Username: s.Username, URLString: s.URL})
	}
	w.Relations = make([]ContactRelation, 0, len(c.Relations))
	for _, r := range c.Relations {
		w.Relations = append(w.Relations, ContactRelation{ContactID: owner(r.ContactID, id), Name: r.Name, Type: r.Label})
	}
	w.InstantMessageAddresses = make([]InstantMessage, 0, len(c.InstantMessageAddresses))
	for _, m := range c.InstantMessageAddresses {
		w.InstantMessageAddresses = append(w.InstantMessageAddresses, InstantMessage{ContactID: owner(m.ContactID, id), Service: m.Service, Username: m.Username, Type: m.Label})
	}
	w.Avatars = make([]Avatar, 0, len(c.Avatars))
	for _, a := range c.Avatars {
		w.Avatars = append(w.Avatars, Avatar{ContactID: owner(a.ContactID, id), Data: encode(a.Data), URL: a.URL, MimeType: sniff(a.Data)})
	}
	return w, nil
}

// ToWireList converts a slice of native contacts, failing on the first
// invalid record. The result is never nil.
func ToWireList(cs []native.Contact) ([]Contact, error) {
	out := make([]Contact, 0, len(cs))
	for i, c := range cs {
		w, err := ToWire(c)
		if err != nil {
			return nil, cmerr.Prefixed(err, fmt.Sprintf("[%d]", i))
		}
		out = append(out, w)
	}
	return out, nil
}

// FromWire converts a wire contact back into the native form.
//
// Base64 image fields are decoded here. Empty collections become nil and
// instants come back in UTC with millisecond precision.
func FromWire(w Contact) (native.Contact, error) {
	if w.Identifier == "" {
		return native.Contact{}, cmerr.Invalid("identifier", "is required")
	}
	imageData, err := decode("imageData", w.ImageData)
	if err != nil {
		return native.Contact{}, err
	}
	thumbnail, err := decode("thumbnailImageData", w.ThumbnailImageData)
	if err != nil {
		return native.Contact{}, err
	}
	c := native.Contact{
		Identifier:         w.Identifier,
		DisplayName:        w.DisplayName,
		NamePrefix:         w.NamePrefix,
		GivenName:          w.GivenName,
		MiddleName:         w.MiddleName,
		FamilyName:         w.FamilyName,
		PreviousFamilyName: w.PreviousFamilyName,
		NameSuffix:         w.NameSuffix,
		Nickname:           w.Nickname,
		PhoneticGivenName:  w.PhoneticGivenName,
		PhoneticMiddleName: w.PhoneticMiddleName,
		PhoneticFamilyName: w.PhoneticFamilyName,
		OrganizationName:   w.OrganizationName,
		DepartmentName:     w.DepartmentName,
		JobTitle:           w.JobTitle,
		Notes:              w.Notes,
		Bio:                w.Bio,
		Location:           w.Location,
		Birthday:           w.Birthday.Time(),
		ContactType:        w.ContactType,
		ImageURL:           w.ImageURL,
		ImageData:          imageData,
		ThumbnailImageData: thumbnail,
		ImageDataAvailable: w.ImageDataAvailable,
		IsDeleted:          w.IsDeleted,
		DirtyTime:          w.DirtyTime.Time(),
		LastSyncedAt:       w.LastSyncedAt.Time(),
		CreatedAt:          w.CreatedAt.Time(),
		ParentContactID:    w.ParentContactID,
		SourceID:           w.SourceID,
		ContactSection:     w.ContactSection,
		MatchString:        w.MatchString,
	}
	if len(w.Interests) > 0 {
		c.Interests = append([]string(nil), w.Interests...)
	}
	for _, p := range w.PhoneNumbers {
		c.PhoneNumbers = append(c.PhoneNumbers, native.PhoneNumber{ContactID: p.ContactID, Value: p.Value, Label: p.Type, Emoji: p.Emoji})
	}
	for _, e := range w.EmailAddresses {
		c.EmailAddresses = append(c.EmailAddresses, native.EmailAddress{ContactID: e.ContactID, Value: e.Value, Label: e.Type, Emoji: e.Emoji})
	}
	for _, a := range w.PostalAddresses {
		c.PostalAddresses = append(c.PostalAddresses, native.PostalAddress{
			ContactID:  a.ContactID,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Label:      a.Type,
		})
	}
	for _, d := range w.Dates {
		c.Dates = append(c.Dates, native.ContactDate{ContactID: d.ContactID, Date: d.Date.Time(), Label: d.Type})
	}
	for _, u := range w.URLAddresses {
		c.URLAddresses = append(c.URLAddresses, native.URLAddress{ContactID: u.ContactID, Value: u.Value, Label: u.Type})
	}
	for _, s := range w.SocialProfiles {
		c.SocialProfiles = append(c.SocialProfiles, native.SocialProfile{ContactID: s.ContactID, Service: s.Service, Username: s.Username, URL: s.URLString})
	}
	for _, r := range w.Relations {
		c.Relations = append(c.Relations, native.ContactRelation{ContactID: r.ContactID, Name: r.Name, Label: r.Type})
	}
	for _, m := range w.InstantMessageAddresses {
		c.InstantMessageAddresses = append(c.InstantMessageAddresses, native.InstantMessage{ContactID: m.ContactID, Service: m.Service, Username: m.Username, Label: m.Type})
	}
	for i, a := range w.Avatars {
		data, err := decode("data", a.Data)
		if err != nil {
			return native.Contact{}, cmerr.Prefixed(err, fmt.Sprintf("avatars[%d]", i))
		}
		c.Avatars = append(c.Avatars, native.Avatar{ContactID: a.ContactID, Data: data, URL: a.URL})
	}
	return c, nil
}

func owner(itemID, parentID string) string {
	if itemID != "" {
		return itemID
	}
	return parentID
}

func encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

func decode(field, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, cmerr.Invalid(field, "is not valid base64")
	}
	return b, nil
}

func sniff(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return mimetype.Detect(b).String()
}
