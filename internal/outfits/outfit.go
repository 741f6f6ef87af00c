package outfits

import (
	"strings"

	"hctool/internal/savefile"
)

// Outfit is a partial mapping from worn-part slot to item code. A nil field
// is an absent slot; a pointer to "" is an explicitly empty one.
type Outfit struct {
	Hair      *string `json:"hair,omitempty"`
	Face      *string `json:"face,omitempty"`
	Accessory *string `json:"accessory,omitempty"`
	Shirt     *string `json:"shirt,omitempty"`
	Jacket    *string `json:"jacket,omitempty"`
}

// Start-of-game cosmetics; the reserved "default" outfit wears these.
const (
	startHair  = "a"
	startShirt = "a"
)

// Default returns the built-in start-of-game outfit: start hair and start
// shirt, every other slot explicitly empty.
func Default() Outfit {
	empty := ""
	hair := startHair
	shirt := startShirt
	return Outfit{
		Hair:      &hair,
		Face:      &empty,
		Accessory: &empty,
		Shirt:     &shirt,
		Jacket:    &empty,
	}
}

func (o *Outfit) slotField(slot savefile.Slot) **string {
	switch slot {
	case savefile.SlotHair:
		return &o.Hair
	case savefile.SlotFace:
		return &o.Face
	case savefile.SlotAccessory:
		return &o.Accessory
	case savefile.SlotShirt:
		return &o.Shirt
	default:
		return &o.Jacket
	}
}

// Slot returns the item code stored for the slot and whether the slot is
// present at all.
func (o Outfit) Slot(slot savefile.Slot) (code string, present bool) {
	field := *o.slotField(slot)
	if field == nil {
		return "", false
	}
	return *field, true
}

// SetSlot marks the slot present with the given item code.
func (o *Outfit) SetSlot(slot savefile.Slot, code string) {
	*o.slotField(slot) = &code
}

// ClearSlot marks the slot absent.
func (o *Outfit) ClearSlot(slot savefile.Slot) {
	*o.slotField(slot) = nil
}

// String renders the outfit the way the CLI logs it: "H:a F:aa S:shirt_red",
// absent slots omitted.
func (o Outfit) String() string {
	var b strings.Builder
	for _, slot := range savefile.Slots() {
		code, present := o.Slot(slot)
		if !present {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(slot.String()[:1])
		b.WriteByte(':')
		b.WriteString(code)
	}
	return b.String()
}
