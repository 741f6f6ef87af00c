// Package outfits extracts worn cosmetics from a save into named outfit
// records, stores them in a single JSON file next to the saves, and applies
// them back onto a save with ownership checking against the save's unlocked
// items.
//
// An outfit slot has three states: absent (the record does not mention the
// slot and loading leaves it alone), empty (the slot is explicitly cleared),
// or an item code. Absent slots come from hand-editing the outfits file or
// from partial saves; a fresh extraction always fills every slot.
package outfits
