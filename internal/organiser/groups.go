package organiser

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"hctool/internal/savefile"
)

//go:embed variant_groups.toml
var embeddedGroupTable []byte

// GroupTable knows which item-code suffixes denote variants of one base item.
type GroupTable struct {
	suffixes map[string]struct{}
}

type groupTableFile struct {
	VariantSuffixes []string `toml:"variant_suffixes"`
}

// DefaultGroups returns the variant table shipped with the binary.
func DefaultGroups() *GroupTable {
	table, err := parseGroupTable(embeddedGroupTable)
	if err != nil {
		// The embedded table is validated by tests; reaching this means a
		// broken build.
		panic(fmt.Sprintf("embedded variant table: %v", err))
	}
	return table
}

// LoadGroups reads a variant table from an external TOML file.
func LoadGroups(path string) (*GroupTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variant table: %w", err)
	}
	table, err := parseGroupTable(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: variant table %s: %s", savefile.ErrFormat, path, err)
	}
	return table, nil
}

func parseGroupTable(raw []byte) (*GroupTable, error) {
	var file groupTableFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	suffixes := make(map[string]struct{}, len(file.VariantSuffixes))
	for _, suffix := range file.VariantSuffixes {
		suffix = strings.TrimSpace(suffix)
		if suffix == "" {
			return nil, fmt.Errorf("empty variant suffix")
		}
		suffixes[suffix] = struct{}{}
	}
	return &GroupTable{suffixes: suffixes}, nil
}

// Key maps an item code to its variant-group key by stripping one trailing
// "_<suffix>" token when the suffix is a known variant.
func (t *GroupTable) Key(code string) string {
	idx := strings.LastIndexByte(code, '_')
	if idx <= 0 {
		return code
	}
	if _, ok := t.suffixes[code[idx+1:]]; ok {
		return code[:idx]
	}
	return code
}
