// Package contacts converts contact records between the native SDK form and
// the wire form handed to JavaScript, and projects them onto the simplified
// UI shape.
//
// The package exposes three groups of helpers:
//
//   - ToWire, ToWireList, FromWire: the contact normalizer.
//   - Simplify, SimplifyList, Expand: the simplified-contact adapter.
//   - FieldType, AccessStatus, ContactFieldType: the enumerations shared with
//     the native SDK.
//
// # Wire Defaults
//
// Every string field is present on the wire, as an empty string when the
// native record has no value. Instants are Timestamp values in milliseconds
// since the Unix epoch; an absent instant is the sentinel 0, never an omitted
// key. Collections are always arrays.
//
// Detail items (phones, emails, addresses, dates, URLs, social profiles,
// relations, instant-message handles, avatars) carry the identifier of their
// parent contact. A missing label stays an empty string; no default category
// is invented.
//
// Image bytes are base64 text on the wire. ToWire encodes and FromWire
// decodes; no other function touches the encoding.
//
// # Round Trip
//
// FromWire(ToWire(c)) reproduces c except for:
//
//   - instants, which keep millisecond precision and come back in UTC;
//   - an instant exactly at the Unix epoch, which shares its encoding with
//     the "no timestamp" sentinel and comes back as the zero time;
//   - detail items without a contactId, which gain the parent identifier;
//   - empty collections and byte slices, which come back nil;
//   - Avatar.MimeType, which is sniffed on output and has no native field.
//
// # Derived Fields
//
// ContactSection and MatchString are caches. Expand and Contact.WithDerived
// recompute them:
//
//	section: first character of familyName, else of givenName, else "#"
//	match:   givenName familyName <digits of each phone> <each email lower-cased>
//
// # Schema Versions
//
// Decoding JSON accepts older shapes (an "id" key, detail "label" keys,
// avatars as URL strings) and upgrades them to SchemaVersion.
//
// # Example
//
//	w, err := contacts.ToWire(nativeContact)
//	if err != nil {
//		return err
//	}
//	row := contacts.Simplify(w)
//	_ = row
package contacts
