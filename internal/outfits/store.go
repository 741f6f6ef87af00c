package outfits

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hctool/internal/fileutil"
	"hctool/internal/savefile"
)

// DefaultName is reserved for the built-in start-of-game outfit. It is never
// persisted and always resolves.
const DefaultName = "default"

// FileName is the store file kept next to the save files.
const FileName = "outfits.json"

// namePattern is what counts as a valid outfit identifier.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Store maps outfit names to outfit records. It is loaded and written as a
// whole file.
type Store struct {
	Outfits map[string]Outfit `json:"outfits"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Outfits: make(map[string]Outfit)}
}

// LoadStore reads the store file. A missing file yields an empty store; a
// present but unparsable one fails with savefile.ErrFormat.
func LoadStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("read outfits file: %w", err)
	}

	store := NewStore()
	if err := json.Unmarshal(raw, store); err != nil {
		return nil, fmt.Errorf("%w: outfits file %s: %s", savefile.ErrFormat, path, err)
	}
	if store.Outfits == nil {
		store.Outfits = make(map[string]Outfit)
	}
	return store, nil
}

// Get resolves an outfit by name. The reserved default name always resolves
// to the built-in outfit, regardless of file contents.
func (s *Store) Get(name string) (Outfit, error) {
	if name == DefaultName {
		return Default(), nil
	}
	outfit, ok := s.Outfits[name]
	if !ok {
		return Outfit{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return outfit, nil
}

// Set stores an outfit under the given name.
func (s *Store) Set(name string, outfit Outfit) {
	s.Outfits[name] = outfit
}

// Names returns the stored outfit names preceded by the built-in default,
// in collated order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Outfits))
	for name := range s.Outfits {
		if name == DefaultName {
			continue
		}
		names = append(names, name)
	}
	collate.New(language.English).SortStrings(names)
	return append([]string{DefaultName}, names...)
}

// Save validates every outfit name and writes the whole store atomically.
// Validation happens before any byte touches the destination.
func (s *Store) Save(path string) error {
	for name := range s.Outfits {
		if err := ValidateName(name); err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize outfits: %w", err)
	}
	out = append(out, '\n')

	if err := fileutil.WriteFileAtomic(path, out, 0o644); err != nil {
		return fmt.Errorf("write outfits file: %w", err)
	}
	return nil
}

// ValidateName rejects names that are not valid identifiers.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
