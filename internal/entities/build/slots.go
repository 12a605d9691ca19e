package build

import "fmt"

// Slots is the combination of equipment slot colors an item's runes occupy.
// R, W, G and B stand for red, white, green and blue.
type Slots uint8

// Slot combinations. SlotsUnset marks an item with no slot combination chosen.
const (
	SlotsR Slots = iota
	SlotsW
	SlotsG
	SlotsB
	SlotsRW
	SlotsGR
	SlotsBR
	SlotsGW
	SlotsBW
	SlotsBG
	SlotsGRW
	SlotsBRW
	SlotsBGR
	SlotsBGW
	SlotsBGRW
	SlotsUnset
)

var slotsNames = [...]string{
	SlotsR:     "R",
	SlotsW:     "W",
	SlotsG:     "G",
	SlotsB:     "B",
	SlotsRW:    "RW",
	SlotsGR:    "GR",
	SlotsBR:    "BR",
	SlotsGW:    "GW",
	SlotsBW:    "BW",
	SlotsBG:    "BG",
	SlotsGRW:   "GRW",
	SlotsBRW:   "BRW",
	SlotsBGR:   "BGR",
	SlotsBGW:   "BGW",
	SlotsBGRW:  "BGRW",
	SlotsUnset: unsetName,
}

// IsValid reports whether s is a named member
func (s Slots) IsValid() bool {
	return int(s) < len(slotsNames)
}

func (s Slots) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Slots(%d)", uint8(s))
	}
	return slotsNames[s]
}

// ParseSlots resolves a slot combination by name
func ParseSlots(name string) (Slots, error) {
	i, ok := lookupName(slotsNames[:], name)
	if !ok {
		return 0, fmt.Errorf("unknown slot combination %q", name)
	}
	return Slots(i), nil
}

// MarshalText implements encoding.TextMarshaler
func (s Slots) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid slots ordinal %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Slots) UnmarshalText(text []byte) error {
	parsed, err := ParseSlots(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
