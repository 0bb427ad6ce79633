package contacts

import (
	"bytes"
	"encoding/json"
)

// Older converters emitted contacts with an "id" key instead of
// "identifier", detail items labeled with "label" instead of "type", and
// avatars as a plain list of URL strings. Decoding upgrades those shapes to
// the canonical schema before filling the struct.

type contactAlias Contact

var detailCollections = []string{
	"phoneNumbers",
	"emailAddresses",
	"postalAddresses",
	"dates",
	"urlAddresses",
	"relations",
	"instantMessageAddresses",
}

// UnmarshalJSON decodes both the canonical and the legacy contact shapes.
func (c *Contact) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	upgradeContact(raw)
	canonical, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var a contactAlias
	if err := json.Unmarshal(canonical, &a); err != nil {
		return err
	}
	*c = Contact(a)
	c.ensureCollections()
	return nil
}

func upgradeContact(raw map[string]any) {
	renameKey(raw, "id", "identifier")
	renameKey(raw, "contactId", "identifier")
	renameKey(raw, "note", "notes")
	id, _ := raw["identifier"].(string)

	for _, key := range detailCollections {
		items, ok := raw[key].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			renameKey(m, "label", "type")
			if _, ok := m["contactId"]; !ok && id != "" {
				m["contactId"] = id
			}
		}
	}

	if avatars, ok := raw["avatars"].([]any); ok {
		for i, item := range avatars {
			if url, ok := item.(string); ok {
				avatars[i] = map[string]any{"contactId": id, "url": url}
			}
		}
	}
}

// renameKey moves raw[from] to raw[to] unless raw[to] is already set.
func renameKey(raw map[string]any, from, to string) {
	v, ok := raw[from]
	if !ok {
		return
	}
	delete(raw, from)
	if _, exists := raw[to]; !exists {
		raw[to] = v
	}
}
