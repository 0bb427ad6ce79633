package social

import (
	"bytes"
	"encoding/json"
)

// Key renames applied when decoding older payloads. The canonical key wins
// when both are present.
var (
	canonicalAliases = [][2]string{
		{"id", "identifier"},
		{"displayName", "fullName"},
		{"userId", "organizationUserId"},
		{"photoURL", "avatarUrl"},
		{"metadata", "contactMetadata"},
	}
	followAliases = [][2]string{
		{"id", "identifier"},
		{"photoURL", "photoUrl"},
	}
	eventAliases = [][2]string{
		{"id", "identifier"},
		{"eventId", "identifier"},
		{"contactId", "canonicalContactId"},
		{"creator", "createdBy"},
	}
)

type (
	canonicalAlias CanonicalContact
	followAlias    FollowRelationship
	eventAlias     SocialEvent
)

// UnmarshalJSON decodes both the canonical and the legacy shape.
func (c *CanonicalContact) UnmarshalJSON(data []byte) error {
	var a canonicalAlias
	ok, err := decodeWithAliases(data, canonicalAliases, &a)
	if err != nil || !ok {
		return err
	}
	*c = CanonicalContact(a)
	if c.ContactMetadata == nil {
		c.ContactMetadata = map[string]any{}
	}
	return nil
}

// UnmarshalJSON decodes both the canonical and the legacy shape.
func (r *FollowRelationship) UnmarshalJSON(data []byte) error {
	var a followAlias
	ok, err := decodeWithAliases(data, followAliases, &a)
	if err != nil || !ok {
		return err
	}
	*r = FollowRelationship(a)
	return nil
}

// UnmarshalJSON decodes both the canonical and the legacy shape.
func (e *SocialEvent) UnmarshalJSON(data []byte) error {
	var a eventAlias
	ok, err := decodeWithAliases(data, eventAliases, &a)
	if err != nil || !ok {
		return err
	}
	*e = SocialEvent(a)
	if e.Metadata == nil {
		e.Metadata = map[string]string{}
	}
	return nil
}

// decodeWithAliases renames top-level keys and decodes into dst. It
// returns false for a JSON null.
func decodeWithAliases(data []byte, aliases [][2]string, dst any) (bool, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	for _, alias := range aliases {
		from, to := alias[0], alias[1]
		v, ok := raw[from]
		if !ok {
			continue
		}
		delete(raw, from)
		if _, exists := raw[to]; !exists {
			raw[to] = v
		}
	}
	canonical, err := json.Marshal(raw)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(canonical, dst)
}
