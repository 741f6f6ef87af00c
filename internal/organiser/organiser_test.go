package organiser_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"hctool/internal/logging"
	"hctool/internal/organiser"
	"hctool/internal/savefile"
)

func buildSave(t *testing.T, overrides map[string]any) *savefile.Save {
	t.Helper()
	data := map[string]any{
		"facelist":        []any{},
		"hairlist":        []any{},
		"jacketlist":      []any{},
		"jewllist":        []any{},
		"shirtlist":       []any{},
		"furnlist":        []any{},
		"emailreadlist":   []any{},
		"emailunreadlist": []any{},
		"playername":      "V",
		"cash":            json.Number("1240"),
	}
	for key, value := range overrides {
		data[key] = value
	}
	raw, err := json.Marshal(map[string]any{"version": 1, "save_data_key": data})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	save, err := savefile.Parse(raw)
	if err != nil {
		t.Fatalf("Parse fixture: %v", err)
	}
	return save
}

func normalise(t *testing.T, save *savefile.Save) {
	t.Helper()
	org := organiser.New(organiser.DefaultGroups(), logging.NewNop())
	if err := org.Normalise(save); err != nil {
		t.Fatalf("Normalise: %v", err)
	}
}

func stringList(t *testing.T, save *savefile.Save, key string) []string {
	t.Helper()
	entries, err := save.List(key)
	if err != nil {
		t.Fatalf("List(%s): %v", key, err)
	}
	out := make([]string, len(entries))
	for i, entry := range entries {
		switch v := entry.(type) {
		case string:
			out[i] = v
		case json.Number:
			out[i] = v.String()
		default:
			t.Fatalf("List(%s): entry %d has type %T", key, i, entry)
		}
	}
	return out
}

func furniture(names ...string) []any {
	out := make([]any, len(names))
	for i, name := range names {
		out[i] = map[string]any{"name": name}
	}
	return out
}

func furnitureNames(t *testing.T, save *savefile.Save) []string {
	t.Helper()
	entries, err := save.List("furnlist")
	if err != nil {
		t.Fatalf("List(furnlist): %v", err)
	}
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.(map[string]any)["name"].(string)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWardrobeGroupsVariantsByFirstAcquisition(t *testing.T) {
	save := buildSave(t, map[string]any{
		"shirtlist": []any{"plain", "band_red", "hoodie", "band_blue", "plain_black"},
	})
	normalise(t, save)

	got := stringList(t, save, "shirtlist")
	want := []string{"plain", "plain_black", "band_red", "band_blue", "hoodie"}
	if !equal(got, want) {
		t.Fatalf("shirtlist = %v, want %v", got, want)
	}
}

func TestFurniturePinsStayOnTop(t *testing.T) {
	save := buildSave(t, map[string]any{
		"furnlist": furniture("plant", "hc_journal", "couch_red", "computer1", "couch_blue"),
	})
	normalise(t, save)

	got := furnitureNames(t, save)
	want := []string{"computer1", "hc_journal", "plant", "couch_red", "couch_blue"}
	if !equal(got, want) {
		t.Fatalf("furnlist = %v, want %v", got, want)
	}
}

func TestFurnitureWithoutPins(t *testing.T) {
	save := buildSave(t, map[string]any{
		"furnlist": furniture("plant", "couch_red"),
	})
	normalise(t, save)

	got := furnitureNames(t, save)
	want := []string{"plant", "couch_red"}
	if !equal(got, want) {
		t.Fatalf("furnlist = %v, want %v", got, want)
	}
}

func TestEmailDeduplicationKeepsOldestCopy(t *testing.T) {
	// Newest first: id 7 appears three times; only the copy nearest the end
	// (the oldest) survives, in its original position relative to id 5.
	save := buildSave(t, map[string]any{
		"emailreadlist": []any{json.Number("7"), json.Number("5"), json.Number("7"), json.Number("7")},
	})
	normalise(t, save)

	got := stringList(t, save, "emailreadlist")
	want := []string{"5", "7"}
	if !equal(got, want) {
		t.Fatalf("emailreadlist = %v, want %v", got, want)
	}
}

func TestEmailDeduplicationSpansBothLists(t *testing.T) {
	save := buildSave(t, map[string]any{
		"emailreadlist":   []any{json.Number("3")},
		"emailunreadlist": []any{json.Number("3"), json.Number("4")},
	})
	normalise(t, save)

	read := stringList(t, save, "emailreadlist")
	unread := stringList(t, save, "emailunreadlist")
	if !equal(read, []string{"3"}) {
		t.Fatalf("emailreadlist = %v", read)
	}
	if !equal(unread, []string{"4"}) {
		t.Fatalf("read copy must win over unread duplicate, got %v", unread)
	}
}

func TestNormaliseIsIdempotent(t *testing.T) {
	save := buildSave(t, map[string]any{
		"shirtlist":     []any{"plain", "band_red", "hoodie", "band_blue"},
		"furnlist":      furniture("plant", "hc_journal", "couch_red", "computer1"),
		"emailreadlist": []any{json.Number("7"), json.Number("5"), json.Number("7")},
	})

	normalise(t, save)
	first, err := savefile.Serialize(save)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	normalise(t, save)
	second, err := savefile.Serialize(save)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("Normalise is not idempotent:\n%s\nvs\n%s", first, second)
	}
}

func TestNormalisePassesEverythingElseThrough(t *testing.T) {
	save := buildSave(t, nil)
	before, err := savefile.Serialize(save)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	normalise(t, save)
	after, err := savefile.Serialize(save)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if !bytes.Equal(before, after) {
		t.Fatalf("empty-list save must be unchanged:\n%s\nvs\n%s", before, after)
	}
}

func TestNormaliseRejectsWrongShapes(t *testing.T) {
	save := buildSave(t, map[string]any{
		"shirtlist": []any{json.Number("1")},
	})
	org := organiser.New(organiser.DefaultGroups(), logging.NewNop())
	if err := org.Normalise(save); err == nil {
		t.Fatal("expected error for non-string wardrobe entry")
	}
}
