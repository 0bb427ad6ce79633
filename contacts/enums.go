package contacts

import (
	"fmt"
	"strings"

	"github.com/spachava753/cmbridge/cmerr"
)

// FieldType is the search scoping bitmask. Values combine with bitwise OR.
type FieldType uint32

const (
	// FieldName scopes search to name fields.
	FieldName FieldType = 1 << iota
	// FieldEmail scopes search to email addresses.
	FieldEmail
	// FieldPhone scopes search to phone numbers.
	FieldPhone
	// FieldAddress scopes search to postal addresses.
	FieldAddress
	// FieldOrganization scopes search to organization fields.
	FieldOrganization
	// FieldNotes scopes search to notes.
	FieldNotes
)

// FieldAll scopes search to every field.
const FieldAll FieldType = 0xFFFFFFFF

const knownFields = FieldName | FieldEmail | FieldPhone | FieldAddress | FieldOrganization | FieldNotes

var fieldNames = []struct {
	field FieldType
	name  string
}{
	{FieldName, "name"},
	{FieldEmail, "email"},
	{FieldPhone, "phone"},
	{FieldAddress, "address"},
	{FieldOrganization, "organization"},
	{FieldNotes, "notes"},
}

// Combine ORs fields together.
func Combine(fields ...FieldType) FieldType {
	var out FieldType
	for _, f := range fields {
		out |= f
	}
	return out
}

// DecodeFieldType interprets a raw bitmask. Zero, negative, and values with
// bits outside the known flags decode to FieldAll, never to an empty scope.
func DecodeFieldType(raw int64) FieldType {
	if raw <= 0 || raw > int64(FieldAll) {
		return FieldAll
	}
	f := FieldType(raw)
	if f == FieldAll || f&^knownFields != 0 {
		return FieldAll
	}
	return f
}

// IsAll reports whether f scopes to every field.
func (f FieldType) IsAll() bool {
	return f == FieldAll
}

// Has reports whether f includes flag.
func (f FieldType) Has(flag FieldType) bool {
	return f&flag == flag
}

// Fields returns the individual flags set in f, in ascending bit order.
// FieldAll returns every known flag.
func (f FieldType) Fields() []FieldType {
	var out []FieldType
	for _, n := range fieldNames {
		if f.Has(n.field) {
			out = append(out, n.field)
		}
	}
	return out
}

// String returns the flag names joined by "|", or "all".
func (f FieldType) String() string {
	if f.IsAll() {
		return "all"
	}
	var parts []string
	for _, n := range fieldNames {
		if f.Has(n.field) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("FieldType(%d)", uint32(f))
	}
	return strings.Join(parts, "|")
}

// AccessStatus is the platform contacts permission state. The ordinals are
// fixed by the native SDK.
type AccessStatus int

const (
	// AccessNotDetermined indicates access has not been requested yet.
	AccessNotDetermined AccessStatus = 0
	// AccessAuthorized indicates full access.
	AccessAuthorized AccessStatus = 1
	// AccessLimitedAuthorized indicates access to a user-selected subset.
	AccessLimitedAuthorized AccessStatus = 2
	// AccessDenied indicates the user denied access.
	AccessDenied AccessStatus = 3
	// AccessRestricted indicates policy prevents access.
	AccessRestricted AccessStatus = 4
)

// ParseAccessStatus validates a raw status ordinal.
func ParseAccessStatus(raw int) (AccessStatus, error) {
	if raw < int(AccessNotDetermined) || raw > int(AccessRestricted) {
		return 0, cmerr.Invalid("status", fmt.Sprintf("unknown access status %d", raw))
	}
	return AccessStatus(raw), nil
}

// HasReadAccess reports whether contacts can be read in this state.
func (s AccessStatus) HasReadAccess() bool {
	return s == AccessAuthorized || s == AccessLimitedAuthorized
}

// String returns the status name.
func (s AccessStatus) String() string {
	switch s {
	case AccessNotDetermined:
		return "notDetermined"
	case AccessAuthorized:
		return "authorized"
	case AccessLimitedAuthorized:
		return "limitedAuthorized"
	case AccessDenied:
		return "denied"
	case AccessRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("AccessStatus(%d)", int(s))
	}
}

// ContactFieldType selects which contacts FetchContactsWithFieldType returns.
type ContactFieldType int

const (
	// ContactFieldAny returns every contact.
	ContactFieldAny ContactFieldType = 0
	// ContactFieldPhone returns contacts with a phone number.
	ContactFieldPhone ContactFieldType = 1
	// ContactFieldEmail returns contacts with an email address.
	ContactFieldEmail ContactFieldType = 2
	// ContactFieldNotes returns contacts with notes.
	ContactFieldNotes ContactFieldType = 3
)

// ParseContactFieldType validates a raw contact field type.
func ParseContactFieldType(raw int) (ContactFieldType, error) {
	if raw < int(ContactFieldAny) || raw > int(ContactFieldNotes) {
		return 0, cmerr.Invalid("fieldType", fmt.Sprintf("unknown contact field type %d", raw))
	}
	return ContactFieldType(raw), nil
}
