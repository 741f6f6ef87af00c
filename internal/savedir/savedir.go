// Package savedir locates the game's save directory and resolves save-slot
// and outfit-store paths inside it. The game keeps its saves in the Godot
// user-data directory; an explicit override always wins over detection.
package savedir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound marks a save directory that could not be located and was not
// overridden.
var ErrNotFound = errors.New("save directory not found")

// gameDataSubdir is where the Godot runtime puts the game's user data,
// relative to the platform data directory.
var gameDataSubdir = filepath.Join("godot", "app_userdata", "HARDCODED")

// SlotCount is the number of save slots the game offers.
const SlotCount = 4

// Resolver caches the resolved save directory for one command invocation.
type Resolver struct {
	override string
	resolved string
}

// NewResolver constructs a resolver. An empty override means autodetection.
func NewResolver(override string) *Resolver {
	return &Resolver{override: strings.TrimSpace(override)}
}

// Dir returns the save directory, resolving it on first use.
func (r *Resolver) Dir() (string, error) {
	if r.resolved != "" {
		return r.resolved, nil
	}

	dir, err := r.resolve()
	if err != nil {
		return "", err
	}
	r.resolved = dir
	return dir, nil
}

func (r *Resolver) resolve() (string, error) {
	if r.override != "" {
		info, err := os.Stat(r.override)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: override path %s is not a directory", ErrNotFound, r.override)
		}
		return r.override, nil
	}

	base, err := dataDir()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, err)
	}
	dir := filepath.Join(base, gameDataSubdir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s does not exist; pass --save-dir", ErrNotFound, dir)
	}
	return dir, nil
}

// SlotPath returns the save file path for a slot in 0-3.
func (r *Resolver) SlotPath(slot int) (string, error) {
	if slot < 0 || slot >= SlotCount {
		return "", fmt.Errorf("invalid save slot %d, expected 0-%d", slot, SlotCount-1)
	}
	dir, err := r.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("savefile%d.json", slot)), nil
}

// OutfitsPath returns the outfit-store path: the override when given,
// otherwise fileName next to the saves.
func (r *Resolver) OutfitsPath(override, fileName string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return override, nil
	}
	dir, err := r.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// dataDir mirrors the platform data-directory rules Godot uses for
// user:// storage.
func dataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin":
		// %AppData% and ~/Library/Application Support respectively.
		return os.UserConfigDir()
	default:
		if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
			return base, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}
