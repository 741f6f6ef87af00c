package organiser

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"hctool/internal/savefile"
)

// wardrobeLists are the owned-cosmetics lists, in the order the game's own
// save code touches them.
var wardrobeLists = []string{"facelist", "hairlist", "jacketlist", "jewllist", "shirtlist"}

const furnitureList = "furnlist"

// emailLists are processed read-list first so a read copy survives over an
// unread duplicate.
var emailLists = []string{"emailreadlist", "emailunreadlist"}

// furniturePins stay at the head of the furniture list in this order.
var furniturePins = []string{"computer1", "hc_journal"}

// Organiser normalizes the designated list fields of a save in place.
type Organiser struct {
	groups *GroupTable
	log    *slog.Logger
}

// New constructs an organiser using the given variant-group table.
func New(groups *GroupTable, logger *slog.Logger) *Organiser {
	return &Organiser{groups: groups, log: logger}
}

// Normalise reorders the wardrobe and furniture lists and deduplicates the
// email lists. All other save fields are left untouched.
func (o *Organiser) Normalise(save *savefile.Save) error {
	if err := o.sortWardrobe(save); err != nil {
		return fmt.Errorf("sort wardrobe lists: %w", err)
	}
	if err := o.sortFurniture(save); err != nil {
		return fmt.Errorf("sort furniture list: %w", err)
	}
	if err := o.deduplicateEmails(save); err != nil {
		return fmt.Errorf("deduplicate emails: %w", err)
	}
	return nil
}

func (o *Organiser) sortWardrobe(save *savefile.Save) error {
	for _, key := range wardrobeLists {
		o.log.Info("sorting wardrobe list", "list", key)

		entries, err := save.List(key)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if _, ok := entry.(string); !ok {
				return fmt.Errorf("%w: key %s: not an array of strings", savefile.ErrFormat, key)
			}
		}
		save.SetList(key, groupEntries(entries, func(entry any) string {
			return o.groups.Key(entry.(string))
		}))
	}
	return nil
}

func (o *Organiser) sortFurniture(save *savefile.Save) error {
	o.log.Info("sorting furniture list")

	entries, err := save.List(furnitureList)
	if err != nil {
		return err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: key %s: not an array of objects", savefile.ErrFormat, furnitureList)
		}
		name, ok := obj["name"].(string)
		if !ok {
			return fmt.Errorf("%w: key %s: entry has no name", savefile.ErrFormat, furnitureList)
		}
		names[i] = name
	}

	// The PC and Journal are identity markers; they never leave the top.
	pinned := make([]any, 0, len(furniturePins))
	rest := make([]any, 0, len(entries))
	restNames := make([]string, 0, len(entries))
	for _, pin := range furniturePins {
		for i, entry := range entries {
			if names[i] == pin {
				pinned = append(pinned, entry)
			}
		}
	}
	for i, entry := range entries {
		if !isPinned(names[i]) {
			rest = append(rest, entry)
			restNames = append(restNames, names[i])
		}
	}

	grouped := groupIndexed(rest, func(i int) string {
		return o.groups.Key(restNames[i])
	})

	save.SetList(furnitureList, append(pinned, grouped...))
	return nil
}

func isPinned(name string) bool {
	for _, pin := range furniturePins {
		if name == pin {
			return true
		}
	}
	return false
}

func (o *Organiser) deduplicateEmails(save *savefile.Save) error {
	o.log.Info("deduplicating emails")

	seen := make(map[string]struct{})
	removed := 0

	for _, key := range emailLists {
		entries, err := save.List(key)
		if err != nil {
			return err
		}

		// Email lists are stored the way the game shows them: newest first.
		// Walking from the end keeps the oldest copy of each duplicate and
		// preserves the survivors' relative order.
		kept := make([]any, 0, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			id, err := contentKey(entries[i])
			if err != nil {
				return fmt.Errorf("%w: key %s: %s", savefile.ErrFormat, key, err)
			}
			if _, dup := seen[id]; dup {
				removed++
				continue
			}
			seen[id] = struct{}{}
			kept = append(kept, entries[i])
		}

		// Undo the reversed walk.
		for left, right := 0, len(kept)-1; left < right; left, right = left+1, right-1 {
			kept[left], kept[right] = kept[right], kept[left]
		}
		save.SetList(key, kept)
	}

	if removed != 0 {
		o.log.Info("removed duplicated emails", "count", removed)
	}
	return nil
}

// contentKey renders an email entry to its canonical JSON form; two entries
// are duplicates exactly when their canonical forms match.
func contentKey(entry any) (string, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// groupEntries buckets entries by key, ordering groups by first appearance
// and keeping the original order inside each group.
func groupEntries(entries []any, key func(any) string) []any {
	return groupIndexed(entries, func(i int) string {
		return key(entries[i])
	})
}

func groupIndexed(entries []any, keyAt func(int) string) []any {
	order := make([]string, 0, len(entries))
	buckets := make(map[string][]any, len(entries))
	for i, entry := range entries {
		k := keyAt(i)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], entry)
	}
	out := make([]any, 0, len(entries))
	for _, k := range order {
		out = append(out, buckets[k]...)
	}
	return out
}
