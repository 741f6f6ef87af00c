// Package testsupport provides save fixtures shared across package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hctool/internal/savefile"
)

// SaveData returns a minimal but complete save-data object. Overrides replace
// keys wholesale.
func SaveData(overrides map[string]any) map[string]any {
	data := map[string]any{
		"cash":            json.Number("1240"),
		"playername":      "V",
		"hairon":          "a",
		"faceon":          "aa",
		"jewlon":          "",
		"shirton":         "a",
		"jacketon":        "",
		"hairlist":        []any{"a"},
		"facelist":        []any{"aa"},
		"jewllist":        []any{},
		"shirtlist":       []any{"a"},
		"jacketlist":      []any{},
		"furnlist":        []any{map[string]any{"name": "computer1"}, map[string]any{"name": "hc_journal"}},
		"emailreadlist":   []any{},
		"emailunreadlist": []any{},
	}
	for key, value := range overrides {
		data[key] = value
	}
	return data
}

// NewSave builds a parsed save from SaveData overrides.
func NewSave(t *testing.T, overrides map[string]any) *savefile.Save {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"version": 1, "save_data_key": SaveData(overrides)})
	if err != nil {
		t.Fatalf("marshal save fixture: %v", err)
	}
	save, err := savefile.Parse(raw)
	if err != nil {
		t.Fatalf("parse save fixture: %v", err)
	}
	return save
}

// WriteSaveFile serializes a fixture save into dir as the given slot's file
// and returns its path.
func WriteSaveFile(t *testing.T, dir string, slot int, overrides map[string]any) string {
	t.Helper()
	save := NewSave(t, overrides)
	out, err := savefile.Serialize(save)
	if err != nil {
		t.Fatalf("serialize save fixture: %v", err)
	}
	path := filepath.Join(dir, "savefile"+string(rune('0'+slot))+".json")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("write save fixture: %v", err)
	}
	return path
}
