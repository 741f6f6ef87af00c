package organiser_test

import (
	"os"
	"path/filepath"
	"testing"

	"hctool/internal/organiser"
)

func TestDefaultGroupsKey(t *testing.T) {
	groups := organiser.DefaultGroups()

	cases := []struct {
		code string
		want string
	}{
		{"shirt_red", "shirt"},
		{"shirt_blue", "shirt"},
		{"shirt", "shirt"},
		{"shirt_fancy", "shirt_fancy"}, // unknown suffix is part of the code
		{"_red", "_red"},               // no base to strip
		{"couch_big_red", "couch_big"},
		{"a", "a"},
	}
	for _, tc := range cases {
		if got := groups.Key(tc.code); got != tc.want {
			t.Fatalf("Key(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLoadGroupsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.toml")
	if err := os.WriteFile(path, []byte(`variant_suffixes = ["neon"]`), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	groups, err := organiser.LoadGroups(path)
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	if got := groups.Key("jacket_neon"); got != "jacket" {
		t.Fatalf("Key = %q, want %q", got, "jacket")
	}
	if got := groups.Key("jacket_red"); got != "jacket_red" {
		t.Fatalf("override table must replace the default, got %q", got)
	}
}

func TestLoadGroupsRejectsBadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.toml")
	if err := os.WriteFile(path, []byte(`variant_suffixes = [""]`), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	if _, err := organiser.LoadGroups(path); err == nil {
		t.Fatal("expected error for empty suffix")
	}
}
