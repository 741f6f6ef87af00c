package savefile

// Slot identifies one of the five worn-part slots of a save.
type Slot int

const (
	SlotHair Slot = iota
	SlotFace
	SlotAccessory
	SlotShirt
	SlotJacket
)

var slotInfo = [...]struct {
	label   string
	wornKey string
	listKey string
}{
	SlotHair:      {"Hair", "hairon", "hairlist"},
	SlotFace:      {"Face", "faceon", "facelist"},
	SlotAccessory: {"Accessory", "jewlon", "jewllist"},
	SlotShirt:     {"Shirt", "shirton", "shirtlist"},
	SlotJacket:    {"Jacket", "jacketon", "jacketlist"},
}

// Slots returns every worn-part slot in display order.
func Slots() []Slot {
	return []Slot{SlotHair, SlotFace, SlotAccessory, SlotShirt, SlotJacket}
}

func (s Slot) String() string { return slotInfo[s].label }

// WornKey is the save-data key holding the currently worn item for the slot.
func (s Slot) WornKey() string { return slotInfo[s].wornKey }

// ListKey is the save-data key holding the owned-item list for the slot.
func (s Slot) ListKey() string { return slotInfo[s].listKey }
