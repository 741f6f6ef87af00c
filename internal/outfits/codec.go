package outfits

import (
	"log/slog"

	"hctool/internal/savefile"
)

// Extract reads every worn-part slot of the save into a fully populated
// outfit; no slot is absent in the result.
func Extract(save *savefile.Save) (Outfit, error) {
	var outfit Outfit
	for _, slot := range savefile.Slots() {
		code, err := save.WornPart(slot)
		if err != nil {
			return Outfit{}, err
		}
		outfit.SetSlot(slot, code)
	}
	return outfit, nil
}

// Merge combines a previously stored outfit with a fresh full extraction.
// Without partial the fresh outfit replaces the stored one. In partial mode
// the stored outfit's shape wins: the result holds exactly the slots present
// in existing, each taking its freshly extracted value, so a hand-trimmed
// outfit keeps its shape across saves.
func Merge(existing, fresh Outfit, partial bool) Outfit {
	if !partial {
		return fresh
	}
	var out Outfit
	for _, slot := range savefile.Slots() {
		if _, present := existing.Slot(slot); !present {
			continue
		}
		if code, present := fresh.Slot(slot); present {
			out.SetSlot(slot, code)
		}
	}
	return out
}

// Apply puts the outfit onto the save. Strict mode is all-or-nothing: if any
// present slot names an item the save has not unlocked, the save is left
// untouched and an *OwnershipError lists every missing code. Partial mode
// skips unowned slots instead. Absent slots are never touched and clearing a
// slot (empty code) needs no ownership.
func Apply(save *savefile.Save, outfit Outfit, partial bool, log *slog.Logger) error {
	type change struct {
		slot savefile.Slot
		code string
	}

	var changes []change
	var missing []string

	for _, slot := range savefile.Slots() {
		code, present := outfit.Slot(slot)
		if !present {
			log.Info("slot not in outfit, leaving as is", "slot", slot.String())
			continue
		}
		if code != "" {
			owned, err := save.Owns(slot, code)
			if err != nil {
				return err
			}
			if !owned {
				if partial {
					log.Warn("item not owned, skipping slot", "slot", slot.String(), "item", code)
					continue
				}
				missing = append(missing, code)
				continue
			}
		}
		changes = append(changes, change{slot: slot, code: code})
	}

	if len(missing) > 0 {
		return &OwnershipError{Missing: missing}
	}

	for _, c := range changes {
		log.Info("setting slot", "slot", c.slot.String(), "item", c.code)
		save.SetWornPart(c.slot, c.code)
	}
	return nil
}
