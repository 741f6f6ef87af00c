package savefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// saveDataKey is the top-level key the game nests all player state under.
const saveDataKey = "save_data_key"

// currentVersion is written by convert when producing a release-format save.
const currentVersion = 1

// Save is one parsed save slot. The zero value is not usable; construct via
// Parse or New.
type Save struct {
	root map[string]any
	data map[string]any
}

// New wraps decoded save data in a current-version envelope.
func New(data map[string]any) *Save {
	root := map[string]any{
		"version":   json.Number(strconv.Itoa(currentVersion)),
		saveDataKey: data,
	}
	return &Save{root: root, data: data}
}

// Parse decodes a release-format save file. Malformed input, duplicated keys,
// a missing save_data_key object, or a non-numeric version all fail with
// ErrFormat.
func Parse(raw []byte) (*Save, error) {
	if err := scanDuplicateKeys(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after save document", ErrFormat)
	}

	root, ok := top.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: save file is not a JSON object", ErrFormat)
	}
	if _, ok := root["version"].(json.Number); !ok {
		return nil, fmt.Errorf("%w: key version: missing or not a number", ErrFormat)
	}
	data, ok := root[saveDataKey].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: key %s: missing or not an object", ErrFormat, saveDataKey)
	}

	return &Save{root: root, data: data}, nil
}

// Serialize renders the save as indented JSON with sorted object keys,
// matching the layout the converter has always produced.
func Serialize(s *Save) ([]byte, error) {
	out, err := json.MarshalIndent(s.root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize save: %w", err)
	}
	return append(out, '\n'), nil
}

// WornPart returns the item code currently worn in the slot. The empty string
// is the game's "nothing worn" marker.
func (s *Save) WornPart(slot Slot) (string, error) {
	value, ok := s.data[slot.WornKey()]
	if !ok {
		return "", fmt.Errorf("%w: key %s: not found", ErrFormat, slot.WornKey())
	}
	code, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %s: not a string", ErrFormat, slot.WornKey())
	}
	return code, nil
}

// SetWornPart stores the item code into the slot's worn field.
func (s *Save) SetWornPart(slot Slot, code string) {
	s.data[slot.WornKey()] = code
}

// OwnedItems returns the unlocked-item codes for the slot's wardrobe list.
func (s *Save) OwnedItems(slot Slot) ([]string, error) {
	entries, err := s.List(slot.ListKey())
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		code, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %s: not an array of strings", ErrFormat, slot.ListKey())
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// Owns reports whether the save has unlocked the item code for the slot.
func (s *Save) Owns(slot Slot, code string) (bool, error) {
	owned, err := s.OwnedItems(slot)
	if err != nil {
		return false, err
	}
	for _, candidate := range owned {
		if candidate == code {
			return true, nil
		}
	}
	return false, nil
}

// List returns the named list field from the save data.
func (s *Save) List(key string) ([]any, error) {
	value, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %s: not found", ErrFormat, key)
	}
	entries, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: key %s: not an array", ErrFormat, key)
	}
	return entries, nil
}

// SetList replaces the named list field.
func (s *Save) SetList(key string, entries []any) {
	s.data[key] = entries
}

// scanDuplicateKeys walks the raw JSON token stream and rejects objects that
// repeat a key. encoding/json silently keeps the last duplicate, which would
// hide data corruption in a hand-edited save.
func scanDuplicateKeys(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return scanValue(dec)
}

func scanValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("object key is not a string")
			}
			if _, dup := seen[key]; dup {
				return fmt.Errorf("duplicate key %q", key)
			}
			seen[key] = struct{}{}
			if err := scanValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	case '[':
		for dec.More() {
			if err := scanValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}
