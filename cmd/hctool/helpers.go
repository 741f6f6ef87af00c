package main

import (
	"fmt"
	"os"
	"strconv"

	"hctool/internal/fileutil"
	"hctool/internal/savefile"
)

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid save slot %q, expected a number", arg)
	}
	return slot, nil
}

// loadSlot reads and parses the save file for a slot, returning the save
// alongside the path it was read from.
func (c *commandContext) loadSlot(slot int) (*savefile.Save, string, error) {
	resolver, err := c.resolver()
	if err != nil {
		return nil, "", err
	}
	path, err := resolver.SlotPath(slot)
	if err != nil {
		return nil, "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read save file: %w", err)
	}
	save, err := savefile.Parse(raw)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}
	return save, path, nil
}

// writeSlot serialises a save back to its slot path, keeping the previous
// contents in a .bak file.
func writeSlot(path string, save *savefile.Save) error {
	out, err := savefile.Serialize(save)
	if err != nil {
		return err
	}
	if err := fileutil.ReplaceFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write save file %s: %w", path, err)
	}
	return nil
}
