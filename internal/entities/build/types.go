// Package build contains the character build types shared through build codes
package build

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Build is a complete character configuration
type Build struct {
	Class ClassName `json:"class"`
	// Level is held wider than its encoded byte; the codec rejects values
	// outside 0..255.
	Level    int    `json:"level"`
	Stats    Stats  `json:"stats"`
	RelicSub uint16 `json:"relic_sub"`
	EpicSub  uint16 `json:"epic_sub"`
	Items    []Item `json:"items"`
}

// Normalize gives an empty item list its canonical nil form, the form
// decoding produces
func (b *Build) Normalize() {
	if len(b.Items) == 0 {
		b.Items = nil
	}
}

// Stats holds the points allocated in the characteristic tree plus the
// major characteristic toggles
type Stats struct {
	PercentHP          int8 `json:"percent_hp"`
	Res                int8 `json:"res"`
	Barrier            int8 `json:"barrier"`
	HealsRec           int8 `json:"heals_rec"`
	Armor              int8 `json:"armor"`
	ElementalMastery   int8 `json:"elemental_mastery"`
	MeleeMastery       int8 `json:"melee_mastery"`
	DistanceMastery    int8 `json:"distance_mastery"`
	HP                 int8 `json:"hp"`
	Lock               int8 `json:"lock"`
	Dodge              int8 `json:"dodge"`
	Initiative         int8 `json:"initiative"`
	LockDodge          int8 `json:"lockdodge"`
	FoW                int8 `json:"fow"`
	Crit               int8 `json:"crit"`
	Block              int8 `json:"block"`
	CritMastery        int8 `json:"crit_mastery"`
	RearMastery        int8 `json:"rear_mastery"`
	BerserkMastery     int8 `json:"berserk_mastery"`
	HealingMastery     int8 `json:"healing_mastery"`
	RearResistance     int8 `json:"rear_resistance"`
	CriticalResistance int8 `json:"critical_resistance"`

	AP       bool `json:"ap"`
	MP       bool `json:"mp"`
	RA       bool `json:"ra"`
	WP       bool `json:"wp"`
	Control  bool `json:"control"`
	DI       bool `json:"di"`
	MajorRes bool `json:"major_res"`
}

// Item is one equipped item
type Item struct {
	// ItemID references the external item catalog
	ItemID          uint16   `json:"item_id"`
	Slots           Slots    `json:"slots"`
	Sublimation     uint16   `json:"sublimation"`
	AssignedMastery Elements `json:"assigned_mastery"`
	AssignedRes     Elements `json:"assigned_res"`
}

// SharedBuild is a build code stored under a short ID for sharing
type SharedBuild struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Codec     string    `json:"codec"`
	Version   uint8     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetID returns the share ID
func (s *SharedBuild) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SharedBuild) GetType() string {
	return "shared_build"
}

var _ core.Entity = (*SharedBuild)(nil)
