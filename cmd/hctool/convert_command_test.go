package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"hctool/internal/savefile"
)

func TestInferOutputPath(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"savegame.bin", "savefile0.json"},
		{"savegame2.bin", "savefile1.json"},
		{"savegame3.bin", "savefile2.json"},
		{"savegame4.bin", "savefile3.json"},
		{"backup.bin", "backup.bin.json"},
		{"savegame", "savegame.json"},
	}
	for _, tc := range cases {
		input := filepath.Join("saves", tc.input)
		want := filepath.Join("saves", tc.want)
		if got := inferOutputPath(input); got != want {
			t.Errorf("inferOutputPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestConvertCommandWritesSlotFile(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "savegame2.bin")
	if err := os.WriteFile(input, legacySave(t), 0o644); err != nil {
		t.Fatalf("write legacy save: %v", err)
	}

	if _, err := runCLI(t, []string{"convert", input}); err != nil {
		t.Fatalf("convert: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "savefile1.json"))
	if err != nil {
		t.Fatalf("read converted save: %v", err)
	}
	save, err := savefile.Parse(raw)
	if err != nil {
		t.Fatalf("parse converted save: %v", err)
	}
	worn, err := save.WornPart(savefile.SlotAccessory)
	if err != nil {
		t.Fatalf("worn accessory: %v", err)
	}
	if worn != "ring" {
		t.Fatalf("accessory = %q, want %q", worn, "ring")
	}
	items, err := save.OwnedItems(savefile.SlotHair)
	if err != nil {
		t.Fatalf("owned hair: %v", err)
	}
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("hairlist = %v, want [a b]", items)
	}
}

func TestConvertCommandExplicitOutput(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "savegame.bin")
	if err := os.WriteFile(input, legacySave(t), 0o644); err != nil {
		t.Fatalf("write legacy save: %v", err)
	}
	dest := filepath.Join(dir, "out.json")

	if _, err := runCLI(t, []string{"convert", input, "--output", dest}); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("expected converted save at %s: %v", dest, err)
	}
}

func TestConvertCommandRejectsGarbage(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "corrupt.bin")
	if err := os.WriteFile(input, []byte{0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := runCLI(t, []string{"convert", input}); err == nil {
		t.Fatal("expected convert of corrupt input to fail")
	}
}

// legacySave assembles a small binary save in the pre-release layout. The
// jewelleryon field checks the rename to the release key names.
func legacySave(t *testing.T) []byte {
	t.Helper()
	var buf []byte
	u32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}
	str := func(s string) {
		u32(0x04)
		u32(uint32(len(s)))
		buf = append(buf, s...)
		for len(buf)%4 != 0 {
			buf = append(buf, 0)
		}
	}

	u32(0) // header
	u32(0x14)
	u32(3 | 0x80<<24)
	str("playername")
	str("V")
	str("jewelleryon")
	str("ring")
	str("hairlist")
	u32(0x15)
	u32(2 | 0x80<<24)
	str("a")
	str("b")
	return buf
}
