package contacts

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/cmerr"
)

func TestFieldTypeCombineAndDecode(t *testing.T) {
	ft := Combine(FieldName, FieldEmail)
	be.Equal(t, ft, FieldType(3))

	decoded := DecodeFieldType(3)
	be.True(t, !decoded.IsAll())
	be.Equal(t, decoded.Fields(), []FieldType{FieldName, FieldEmail})
	be.Equal(t, decoded.String(), "name|email")
}

func TestFieldTypeFallsBackToAll(t *testing.T) {
	for _, raw := range []int64{0, -1, 64, 3 | 128, 0x1FFFFFFFF} {
		be.Equal(t, DecodeFieldType(raw), FieldAll)
	}
	be.Equal(t, DecodeFieldType(0xFFFFFFFF), FieldAll)
	be.Equal(t, DecodeFieldType(32), FieldNotes)
	be.Equal(t, len(FieldAll.Fields()), 6)
	be.Equal(t, FieldAll.String(), "all")
}

func TestAccessStatusOrdinals(t *testing.T) {
	be.Equal(t, int(AccessNotDetermined), 0)
	be.Equal(t, int(AccessAuthorized), 1)
	be.Equal(t, int(AccessLimitedAuthorized), 2)
	be.Equal(t, int(AccessDenied), 3)
	be.Equal(t, int(AccessRestricted), 4)

	s, err := ParseAccessStatus(2)
	be.Err(t, err, nil)
	be.True(t, s.HasReadAccess())
	be.True(t, !AccessDenied.HasReadAccess())

	_, err = ParseAccessStatus(5)
	be.True(t, errors.Is(err, cmerr.ErrValidation))
}

func TestContactFieldType(t *testing.T) {
	ft, err := ParseContactFieldType(2)
	be.Err(t, err, nil)
	be.Equal(t, ft, ContactFieldEmail)

	_, err = ParseContactFieldType(9)
	be.True(t, errors.Is(err, cmerr.ErrValidation))
}

func TestLegacyContactShape(t *testing.T) {
	legacy := `{
		"id": "old-1",
		"givenName": "Ana",
		"note": "from v1",
		"phoneNumbers": [{"value": "123", "label": "home"}],
		"avatars": ["https://img.example/a.png"],
		"createdAt": "2023-11-14T22:13:20Z"
	}`
	var c Contact
	be.Err(t, json.Unmarshal([]byte(legacy), &c), nil)
	be.Equal(t, c.Identifier, "old-1")
	be.Equal(t, c.Notes, "from v1")
	be.Equal(t, c.PhoneNumbers, []PhoneNumber{{ContactID: "old-1", Value: "123", Type: "home"}})
	be.Equal(t, c.Avatars, []Avatar{{ContactID: "old-1", URL: "https://img.example/a.png"}})
	be.Equal(t, c.CreatedAt, Timestamp(1700000000000))
	be.True(t, c.EmailAddresses != nil)
}

func TestCanonicalShapeWins(t *testing.T) {
	var c Contact
	err := json.Unmarshal([]byte(`{"identifier":"new","id":"old","phoneNumbers":[{"contactId":"new","value":"1","type":"work","label":"home"}]}`), &c)
	be.Err(t, err, nil)
	be.Equal(t, c.Identifier, "new")
	be.Equal(t, c.PhoneNumbers[0].Type, "work")
}
