package buildcode

import (
	"encoding/binary"
	"strconv"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

// Version 1 layout, big-endian:
//
//	version(1) class(1) level(1) stats(22x1) flags(7x1) relic_sub(2) epic_sub(2)
//	items: item_id(2) slots(1) sublimation(2) assigned_mastery(1) assigned_res(1)
//
// The item count is not stored; it is the remaining length over v1ItemSize.
const (
	v1StatCount = 22
	v1FlagCount = 7

	// v1HeaderSize is also the offset of the first item record
	v1HeaderSize = 1 + 1 + 1 + v1StatCount + v1FlagCount + 2 + 2
	v1ItemSize   = 2 + 1 + 2 + 1 + 1

	maxLevel = 0xff
)

type statField struct {
	name  string
	field func(*build.Stats) *int8
}

type flagField struct {
	name  string
	field func(*build.Stats) *bool
}

// v1Stats is the wire order of the stat bytes
var v1Stats = [v1StatCount]statField{
	{"percent_hp", func(s *build.Stats) *int8 { return &s.PercentHP }},
	{"res", func(s *build.Stats) *int8 { return &s.Res }},
	{"barrier", func(s *build.Stats) *int8 { return &s.Barrier }},
	{"heals_rec", func(s *build.Stats) *int8 { return &s.HealsRec }},
	{"armor", func(s *build.Stats) *int8 { return &s.Armor }},
	{"elemental_mastery", func(s *build.Stats) *int8 { return &s.ElementalMastery }},
	{"melee_mastery", func(s *build.Stats) *int8 { return &s.MeleeMastery }},
	{"distance_mastery", func(s *build.Stats) *int8 { return &s.DistanceMastery }},
	{"hp", func(s *build.Stats) *int8 { return &s.HP }},
	{"lock", func(s *build.Stats) *int8 { return &s.Lock }},
	{"dodge", func(s *build.Stats) *int8 { return &s.Dodge }},
	{"initiative", func(s *build.Stats) *int8 { return &s.Initiative }},
	{"lockdodge", func(s *build.Stats) *int8 { return &s.LockDodge }},
	{"fow", func(s *build.Stats) *int8 { return &s.FoW }},
	{"crit", func(s *build.Stats) *int8 { return &s.Crit }},
	{"block", func(s *build.Stats) *int8 { return &s.Block }},
	{"crit_mastery", func(s *build.Stats) *int8 { return &s.CritMastery }},
	{"rear_mastery", func(s *build.Stats) *int8 { return &s.RearMastery }},
	{"berserk_mastery", func(s *build.Stats) *int8 { return &s.BerserkMastery }},
	{"healing_mastery", func(s *build.Stats) *int8 { return &s.HealingMastery }},
	{"rear_resistance", func(s *build.Stats) *int8 { return &s.RearResistance }},
	{"critical_resistance", func(s *build.Stats) *int8 { return &s.CriticalResistance }},
}

// v1Flags is the wire order of the boolean bytes
var v1Flags = [v1FlagCount]flagField{
	{"ap", func(s *build.Stats) *bool { return &s.AP }},
	{"mp", func(s *build.Stats) *bool { return &s.MP }},
	{"ra", func(s *build.Stats) *bool { return &s.RA }},
	{"wp", func(s *build.Stats) *bool { return &s.WP }},
	{"control", func(s *build.Stats) *bool { return &s.Control }},
	{"di", func(s *build.Stats) *bool { return &s.DI }},
	{"major_res", func(s *build.Stats) *bool { return &s.MajorRes }},
}

func encodeV1(b *build.Build) ([]byte, error) {
	if !b.Class.IsValid() {
		return nil, invalidEnum("class", 1, uint8(b.Class))
	}
	if b.Level < 0 || b.Level > maxLevel {
		return nil, overflow("level", b.Level, maxLevel)
	}

	buf := make([]byte, 0, v1HeaderSize+len(b.Items)*v1ItemSize)
	buf = append(buf, VersionV1, uint8(b.Class), uint8(b.Level))

	stats := b.Stats
	for _, f := range v1Stats {
		buf = append(buf, uint8(*f.field(&stats)))
	}
	for _, f := range v1Flags {
		buf = append(buf, boolByte(*f.field(&stats)))
	}
	buf = binary.BigEndian.AppendUint16(buf, b.RelicSub)
	buf = binary.BigEndian.AppendUint16(buf, b.EpicSub)

	for i, item := range b.Items {
		offset := v1HeaderSize + i*v1ItemSize
		if !item.Slots.IsValid() {
			return nil, invalidEnum(itemField(i, "slots"), offset+2, uint8(item.Slots))
		}
		if !item.AssignedMastery.IsValid() {
			return nil, invalidEnum(itemField(i, "assigned_mastery"), offset+5, uint8(item.AssignedMastery))
		}
		if !item.AssignedRes.IsValid() {
			return nil, invalidEnum(itemField(i, "assigned_res"), offset+6, uint8(item.AssignedRes))
		}

		buf = binary.BigEndian.AppendUint16(buf, item.ItemID)
		buf = append(buf, uint8(item.Slots))
		buf = binary.BigEndian.AppendUint16(buf, item.Sublimation)
		buf = append(buf, uint8(item.AssignedMastery), uint8(item.AssignedRes))
	}

	return buf, nil
}

func decodeV1(data []byte) (*build.Build, error) {
	return readV1(data, nil)
}

func inspectV1(data []byte) (*Layout, error) {
	layout := &Layout{Version: VersionV1, Size: len(data)}
	b, err := readV1(data, func(name string, offset, width int, value string) {
		raw := make([]byte, width)
		copy(raw, data[offset:offset+width])
		layout.Fields = append(layout.Fields, Field{
			Name:   name,
			Offset: offset,
			Width:  width,
			Raw:    raw,
			Value:  value,
		})
	})
	if err != nil {
		return nil, err
	}
	layout.ItemCount = len(b.Items)
	return layout, nil
}

// fieldVisitor observes every field as it is read
type fieldVisitor func(name string, offset, width int, value string)

// readV1 walks a version 1 code. The version byte has already been checked.
func readV1(data []byte, visit fieldVisitor) (*build.Build, error) {
	if len(data) < v1HeaderSize {
		return nil, truncated("header", 0, v1HeaderSize, len(data))
	}
	itemBytes := len(data) - v1HeaderSize
	if rem := itemBytes % v1ItemSize; rem != 0 {
		partial := itemBytes / v1ItemSize
		return nil, truncated(itemField(partial, "record"), v1HeaderSize+partial*v1ItemSize, v1ItemSize, rem)
	}

	r := &reader{data: data, visit: visit}
	r.u8("version")

	b := &build.Build{}

	class := build.ClassName(r.peek())
	if !class.IsValid() {
		return nil, invalidEnum("class", r.off, uint8(class))
	}
	b.Class = build.ClassName(r.enum("class", class.String()))
	b.Level = int(r.u8("level"))

	for _, f := range v1Stats {
		*f.field(&b.Stats) = r.i8(f.name)
	}
	for _, f := range v1Flags {
		*f.field(&b.Stats) = r.flag(f.name)
	}
	b.RelicSub = r.u16("relic_sub")
	b.EpicSub = r.u16("epic_sub")

	// A build without items decodes with nil Items
	count := itemBytes / v1ItemSize
	if count > 0 {
		b.Items = make([]build.Item, count)
	}
	for i := range b.Items {
		item := &b.Items[i]
		item.ItemID = r.u16(itemField(i, "item_id"))

		slots := build.Slots(r.peek())
		if !slots.IsValid() {
			return nil, invalidEnum(itemField(i, "slots"), r.off, uint8(slots))
		}
		item.Slots = build.Slots(r.enum(itemField(i, "slots"), slots.String()))

		item.Sublimation = r.u16(itemField(i, "sublimation"))

		mastery := build.Elements(r.peek())
		if !mastery.IsValid() {
			return nil, invalidEnum(itemField(i, "assigned_mastery"), r.off, uint8(mastery))
		}
		item.AssignedMastery = build.Elements(r.enum(itemField(i, "assigned_mastery"), mastery.String()))

		res := build.Elements(r.peek())
		if !res.IsValid() {
			return nil, invalidEnum(itemField(i, "assigned_res"), r.off, uint8(res))
		}
		item.AssignedRes = build.Elements(r.enum(itemField(i, "assigned_res"), res.String()))
	}

	return b, nil
}

// reader is a cursor over a buffer whose length has already been
// validated against the layout.
type reader struct {
	data  []byte
	off   int
	visit fieldVisitor
}

func (r *reader) peek() uint8 {
	return r.data[r.off]
}

func (r *reader) emit(name string, width int, value string) {
	if r.visit != nil {
		r.visit(name, r.off, width, value)
	}
	r.off += width
}

func (r *reader) u8(name string) uint8 {
	v := r.data[r.off]
	r.emit(name, 1, strconv.Itoa(int(v)))
	return v
}

func (r *reader) i8(name string) int8 {
	v := int8(r.data[r.off])
	r.emit(name, 1, strconv.Itoa(int(v)))
	return v
}

func (r *reader) flag(name string) bool {
	v := r.data[r.off] != 0
	r.emit(name, 1, strconv.FormatBool(v))
	return v
}

func (r *reader) u16(name string) uint16 {
	v := binary.BigEndian.Uint16(r.data[r.off:])
	r.emit(name, 2, strconv.Itoa(int(v)))
	return v
}

func (r *reader) enum(name, member string) uint8 {
	v := r.data[r.off]
	r.emit(name, 1, member)
	return v
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func itemField(index int, name string) string {
	return "items[" + strconv.Itoa(index) + "]." + name
}
