package build

import (
	"fmt"
	"strings"
)

// ClassName identifies the character class of a build
type ClassName uint8

// Class constants. The ordinal is the wire value.
const (
	ClassFeca ClassName = iota
	ClassOsamodas
	ClassEnutrof
	ClassSram
	ClassXelor
	ClassEcaflip
	ClassEniripsa
	ClassIop
	ClassCra
	ClassSadida
	ClassSacrier
	ClassPandawa
	ClassRogue
	ClassMasqueraider
	ClassOuginak
	ClassFoggernaut
	ClassEliotrope
	ClassHuppermage
)

var classNames = [...]string{
	ClassFeca:         "Feca",
	ClassOsamodas:     "Osamodas",
	ClassEnutrof:      "Enutrof",
	ClassSram:         "Sram",
	ClassXelor:        "Xelor",
	ClassEcaflip:      "Ecaflip",
	ClassEniripsa:     "Eniripsa",
	ClassIop:          "Iop",
	ClassCra:          "Cra",
	ClassSadida:       "Sadida",
	ClassSacrier:      "Sacrier",
	ClassPandawa:      "Pandawa",
	ClassRogue:        "Rogue",
	ClassMasqueraider: "Masqueraider",
	ClassOuginak:      "Ouginak",
	ClassFoggernaut:   "Foggernaut",
	ClassEliotrope:    "Eliotrope",
	ClassHuppermage:   "Huppermage",
}

// classAliases holds the short names used by the community build tools
var classAliases = map[string]ClassName{
	"osa":    ClassOsamodas,
	"enu":    ClassEnutrof,
	"xel":    ClassXelor,
	"eca":    ClassEcaflip,
	"eni":    ClassEniripsa,
	"sadi":   ClassSadida,
	"sac":    ClassSacrier,
	"panda":  ClassPandawa,
	"masq":   ClassMasqueraider,
	"ougi":   ClassOuginak,
	"fog":    ClassFoggernaut,
	"elio":   ClassEliotrope,
	"hupper": ClassHuppermage,
}

// IsValid reports whether c names a class
func (c ClassName) IsValid() bool {
	return int(c) < len(classNames)
}

// String returns the class name
func (c ClassName) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("ClassName(%d)", uint8(c))
	}
	return classNames[c]
}

// ParseClassName resolves a class by full name or community alias, case-insensitively
func ParseClassName(s string) (ClassName, error) {
	for i, name := range classNames {
		if strings.EqualFold(name, s) {
			return ClassName(i), nil
		}
	}
	if c, ok := classAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c ClassName) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid class ordinal %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ClassName) UnmarshalText(text []byte) error {
	parsed, err := ParseClassName(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
