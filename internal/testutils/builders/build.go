// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

// BuildBuilder provides a fluent interface for building test Build instances
type BuildBuilder struct {
	build *build.Build
}

// NewBuildBuilder creates a builder for a level 1 Feca with no items
func NewBuildBuilder() *BuildBuilder {
	return &BuildBuilder{
		build: &build.Build{
			Class: build.ClassFeca,
			Level: 1,
		},
	}
}

// WithClass sets the class
func (b *BuildBuilder) WithClass(class build.ClassName) *BuildBuilder {
	b.build.Class = class
	return b
}

// WithLevel sets the level
func (b *BuildBuilder) WithLevel(level int) *BuildBuilder {
	b.build.Level = level
	return b
}

// WithStats replaces the stat block
func (b *BuildBuilder) WithStats(stats build.Stats) *BuildBuilder {
	b.build.Stats = stats
	return b
}

// WithSublimations sets the relic and epic sublimation levels
func (b *BuildBuilder) WithSublimations(relic, epic uint16) *BuildBuilder {
	b.build.RelicSub = relic
	b.build.EpicSub = epic
	return b
}

// WithItem appends an item
func (b *BuildBuilder) WithItem(item build.Item) *BuildBuilder {
	b.build.Items = append(b.build.Items, item)
	return b
}

// WithGeneratedItems appends n distinct items cycling through every slot
// combination and element assignment
func (b *BuildBuilder) WithGeneratedItems(n int) *BuildBuilder {
	for i := 0; i < n; i++ {
		b.build.Items = append(b.build.Items, build.Item{
			ItemID:          uint16(1000 + i*97),
			Slots:           build.Slots(i % 16),
			Sublimation:     uint16(i * 3),
			AssignedMastery: build.Elements(i % 14),
			AssignedRes:     build.Elements((i + 5) % 14),
		})
	}
	return b
}

// Build returns the built Build
func (b *BuildBuilder) Build() *build.Build {
	return b.build
}

// ExampleBuild returns the level 200 Iop used as the reference build code:
// one melee mastery stat point, relic sublimation 5 and a single item.
func ExampleBuild() *build.Build {
	return NewBuildBuilder().
		WithClass(build.ClassIop).
		WithLevel(200).
		WithStats(build.Stats{MeleeMastery: 40}).
		WithSublimations(5, 0).
		WithItem(build.Item{
			ItemID:          12345,
			Slots:           build.SlotsBGRW,
			Sublimation:     3,
			AssignedMastery: build.ElementsFEW,
			AssignedRes:     build.ElementsUnset,
		}).
		Build()
}
