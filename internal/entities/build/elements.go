package build

import (
	"fmt"
	"strings"
)

const unsetName = "unset"

// Elements is the element combination an item's random mastery or
// resistance roll is assigned to. A, E, F and W stand for air, earth,
// fire and water.
type Elements uint8

// Element combinations. Ordinal 14 is not assigned.
const (
	ElementsA Elements = iota
	ElementsE
	ElementsF
	ElementsW
	ElementsAW
	ElementsEA
	ElementsEW
	ElementsFA
	ElementsFE
	ElementsFW
	ElementsEAW
	ElementsFAW
	ElementsFEA
	ElementsFEW

	ElementsUnset Elements = 15
)

var elementsNames = [...]string{
	ElementsA:     "A",
	ElementsE:     "E",
	ElementsF:     "F",
	ElementsW:     "W",
	ElementsAW:    "AW",
	ElementsEA:    "EA",
	ElementsEW:    "EW",
	ElementsFA:    "FA",
	ElementsFE:    "FE",
	ElementsFW:    "FW",
	ElementsEAW:   "EAW",
	ElementsFAW:   "FAW",
	ElementsFEA:   "FEA",
	ElementsFEW:   "FEW",
	ElementsUnset: unsetName,
}

// IsValid reports whether e is a named member
func (e Elements) IsValid() bool {
	return int(e) < len(elementsNames) && elementsNames[e] != ""
}

func (e Elements) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Elements(%d)", uint8(e))
	}
	return elementsNames[e]
}

// ParseElements resolves an element combination by name
func ParseElements(name string) (Elements, error) {
	i, ok := lookupName(elementsNames[:], name)
	if !ok {
		return 0, fmt.Errorf("unknown element combination %q", name)
	}
	return Elements(i), nil
}

// MarshalText implements encoding.TextMarshaler
func (e Elements) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("invalid elements ordinal %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Elements) UnmarshalText(text []byte) error {
	parsed, err := ParseElements(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// lookupName finds name in a sparse name table. Letter combinations are
// matched exactly, "unset" case-insensitively.
func lookupName(names []string, name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i, n := range names {
		if n == "" {
			continue
		}
		if n == name || (n == unsetName && strings.EqualFold(name, unsetName)) {
			return i, true
		}
	}
	return 0, false
}
