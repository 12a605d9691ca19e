package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

const exampleYAML = `
class: iop
level: 200
stats:
  melee_mastery: 40
  ap: true
relic_sub: 5
items:
  - item_id: 12345
    slots: BGRW
    sublimation: 3
    assigned_mastery: FEW
    assigned_res: unset
`

func TestParseDocumentYAML(t *testing.T) {
	b, err := build.ParseDocument([]byte(exampleYAML))
	require.NoError(t, err)

	assert.Equal(t, build.ClassIop, b.Class)
	assert.Equal(t, 200, b.Level)
	assert.Equal(t, int8(40), b.Stats.MeleeMastery)
	assert.True(t, b.Stats.AP)
	assert.Equal(t, uint16(5), b.RelicSub)
	require.Len(t, b.Items, 1)
	assert.Equal(t, build.Item{
		ItemID:          12345,
		Slots:           build.SlotsBGRW,
		Sublimation:     3,
		AssignedMastery: build.ElementsFEW,
		AssignedRes:     build.ElementsUnset,
	}, b.Items[0])
}

func TestParseDocumentJSON(t *testing.T) {
	b, err := build.ParseDocument([]byte(`{"class": "Xelor", "level": 12, "items": []}`))
	require.NoError(t, err)
	assert.Equal(t, build.ClassXelor, b.Class)
	assert.Equal(t, 12, b.Level)
	assert.Nil(t, b.Items)

	// no items key and an empty list read the same way
	missing, err := build.ParseDocument([]byte("class: Xelor\nlevel: 12"))
	require.NoError(t, err)
	assert.Equal(t, b, missing)
}

func TestParseDocumentErrors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "empty", doc: "  \n", wantErr: "empty"},
		{name: "yaml scalar", doc: "just a string", wantErr: "invalid build YAML"},
		{name: "unknown field", doc: `{"class": "Iop", "colour": "red"}`, wantErr: "unknown field"},
		{name: "unknown class", doc: "class: Necromancer", wantErr: "unknown class"},
		{name: "stat overflow", doc: "stats:\n  hp: 300", wantErr: "invalid build document"},
		{name: "bad slots", doc: "items:\n  - slots: XYZ", wantErr: "invalid build document"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := build.ParseDocument([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
