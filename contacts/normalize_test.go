package contacts

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/native"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func fullContact() native.Contact {
	at := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t.UTC()
	}
	return native.Contact{
		Identifier:         "c-1",
		DisplayName:        "Ana Ruiz",
		NamePrefix:         "Dr.",
		GivenName:          "Ana",
		MiddleName:         "M",
		FamilyName:         "Ruiz",
		PreviousFamilyName: "Lopez",
		NameSuffix:         "PhD",
		Nickname:           "Annie",
		PhoneticGivenName:  "AH-nah",
		OrganizationName:   "Acme",
		DepartmentName:     "R&D",
		JobTitle:           "Chemist",
		Notes:              "met at conf",
		Bio:                "likes hiking",
		Location:           "Lisbon",
		Birthday:           at("1990-04-02T00:00:00Z"),
		ContactType:        1,
		ImageURL:           "https://img.example/ana.png",
		ImageData:          pngHeader,
		ThumbnailImageData: []byte{0x01, 0x02, 0x03},
		ImageDataAvailable: true,
		PhoneNumbers: []native.PhoneNumber{
			{ContactID: "c-1", Value: "+1 (555) 010-2000", Label: "mobile", Emoji: "📱"},
			{ContactID: "c-1", Value: "555-0199"},
		},
		EmailAddresses:          []native.EmailAddress{{ContactID: "c-1", Value: "Ana@Example.com", Label: "work"}},
		PostalAddresses:         []native.PostalAddress{{ContactID: "c-1", Street: "1 Main", City: "Lisbon", Country: "PT", Label: "home"}},
		Dates:                   []native.ContactDate{{ContactID: "c-1", Date: at("2015-06-01T00:00:00Z"), Label: "anniversary"}},
		URLAddresses:            []native.URLAddress{{ContactID: "c-1", Value: "https://ana.example"}},
		SocialProfiles:          []native.SocialProfile{{ContactID: "c-1", Service: "mastodon", Username: "ana", URL: "https://m.example/@ana"}},
		Relations:               []native.ContactRelation{{ContactID: "c-1", Name: "Luis", Label: "brother"}},
		InstantMessageAddresses: []native.InstantMessage{{ContactID: "c-1", Service: "signal", Username: "ana.01", Label: "personal"}},
		Avatars:                 []native.Avatar{{ContactID: "c-1", Data: pngHeader}, {ContactID: "c-1", URL: "https://img.example/a2.png"}},
		Interests:               []string{"climbing", "jazz"},
		DirtyTime:               at("2024-01-02T03:04:05.678Z"),
		LastSyncedAt:            at("2024-01-01T00:00:00Z"),
		CreatedAt:               at("2020-01-01T00:00:00Z"),
		ParentContactID:         "p-9",
		SourceID:                "device",
		ContactSection:          "R",
		MatchString:             "Ana Ruiz 15550102000 5550199 ana@example.com",
	}
}

func TestRoundTrip(t *testing.T) {
	c := fullContact()
	w, err := ToWire(c)
	be.Err(t, err, nil)

	back, err := FromWire(w)
	be.Err(t, err, nil)
	if diff := cmp.Diff(c, back, cmpopts.EquateEmpty()); diff != "" {
		t.Fatal(diff)
	}
}

func TestRoundTripThroughJSON(t *testing.T) {
	c := fullContact()
	w, err := ToWire(c)
	be.Err(t, err, nil)
	data, err := json.Marshal(w)
	be.Err(t, err, nil)

	var decoded Contact
	be.Err(t, json.Unmarshal(data, &decoded), nil)
	back, err := FromWire(decoded)
	be.Err(t, err, nil)
	if diff := cmp.Diff(c, back, cmpopts.EquateEmpty()); diff != "" {
		t.Fatal(diff)
	}
}

func TestToWireRequiresIdentifier(t *testing.T) {
	_, err := ToWire(native.Contact{GivenName: "Ana"})
	be.True(t, errors.Is(err, cmerr.ErrValidation))

	_, err = FromWire(Contact{GivenName: "Ana"})
	be.True(t, errors.Is(err, cmerr.ErrValidation))

	_, err = ToWireList([]native.Contact{{Identifier: "a"}, {}})
	var e *cmerr.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Fields[0].Field, "[1].identifier")
}

func TestToWireDefaults(t *testing.T) {
	w, err := ToWire(native.Contact{Identifier: "c-2"})
	be.Err(t, err, nil)

	data, err := json.Marshal(w)
	be.Err(t, err, nil)
	var raw map[string]any
	be.Err(t, json.Unmarshal(data, &raw), nil)

	be.Equal(t, raw["givenName"], any(""))
	be.Equal(t, raw["createdAt"], any(0.0))
	be.Equal(t, raw["lastSyncedAt"], any(0.0))
	be.Equal(t, raw["phoneNumbers"], any([]any{}))
	be.Equal(t, raw["avatars"], any([]any{}))
	be.Equal(t, raw["interests"], any([]any{}))
}

func TestDetailItemsEchoParentAndKeepEmptyLabels(t *testing.T) {
	w, err := ToWire(native.Contact{
		Identifier:   "c-3",
		PhoneNumbers: []native.PhoneNumber{{Value: "123"}},
		Relations:    []native.ContactRelation{{ContactID: "other", Name: "Kim"}},
	})
	be.Err(t, err, nil)
	be.Equal(t, w.PhoneNumbers[0].ContactID, "c-3")
	be.Equal(t, w.PhoneNumbers[0].Type, "")
	be.Equal(t, w.Relations[0].ContactID, "other")
	be.Equal(t, w.Relations[0].Type, "")
}

func TestImagesEncodedOnce(t *testing.T) {
	w, err := ToWire(native.Contact{Identifier: "c-4", ImageData: pngHeader, Avatars: []native.Avatar{{Data: pngHeader}}})
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(w.ImageData, "iVBORw0KGgo"))
	be.Equal(t, w.ThumbnailImageData, "")
	be.Equal(t, w.Avatars[0].Data, w.ImageData)
	be.Equal(t, w.Avatars[0].MimeType, "image/png")

	back, err := FromWire(w)
	be.Err(t, err, nil)
	be.Equal(t, back.ImageData, pngHeader)
}

func TestFromWireRejectsBadBase64(t *testing.T) {
	_, err := FromWire(Contact{Identifier: "c-5", ImageData: "%%%"})
	be.True(t, errors.Is(err, cmerr.ErrValidation))

	_, err = FromWire(Contact{Identifier: "c-5", Avatars: []Avatar{{Data: "%%%"}}})
	var e *cmerr.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Fields[0].Field, "avatars[0].data")
}

func TestTombstoneKeepsTimestamps(t *testing.T) {
	dirty := time.UnixMilli(1700000000000).UTC()
	w, err := ToWire(native.Contact{Identifier: "gone", IsDeleted: true, DirtyTime: dirty})
	be.Err(t, err, nil)
	be.True(t, w.IsDeleted)
	be.Equal(t, w.DirtyTime, Timestamp(1700000000000))
	be.Equal(t, w.DirtyTime.Time(), dirty)
}

func TestEpochInstantIsSentinel(t *testing.T) {
	w, err := ToWire(native.Contact{Identifier: "e", Birthday: time.Unix(0, 0)})
	be.Err(t, err, nil)
	be.True(t, w.Birthday.IsZero())

	back, err := FromWire(w)
	be.Err(t, err, nil)
	be.True(t, back.Birthday.IsZero())
}

func TestTimestampDecoding(t *testing.T) {
	var v struct {
		A Timestamp `json:"a"`
		B Timestamp `json:"b"`
		C Timestamp `json:"c"`
		D Timestamp `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a":1700000000000,"b":"2023-11-14T22:13:20Z","c":null,"d":""}`), &v)
	be.Err(t, err, nil)
	be.Equal(t, v.A, Timestamp(1700000000000))
	be.Equal(t, v.B, Timestamp(1700000000000))
	be.Equal(t, v.C, Timestamp(0))
	be.Equal(t, v.D, Timestamp(0))
	be.True(t, Timestamp(0).Time().IsZero())
}
