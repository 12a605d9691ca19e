package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/build-share-api/internal/codec/buildcode"
	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/entities/build"
	"github.com/KirkDiggler/build-share-api/internal/orchestrators/buildshare"
	"github.com/KirkDiggler/build-share-api/internal/testutils"
	"github.com/KirkDiggler/build-share-api/internal/testutils/builders"
)

func newTestCommand(stdin string) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	return cmd, out
}

func resetCodecFlags(t *testing.T) {
	t.Helper()
	codecName = "base64url"
	inputFile = ""
	t.Cleanup(func() {
		codecName = "base64url"
		inputFile = ""
	})
}

func TestEncodeCommand(t *testing.T) {
	resetCodecFlags(t)

	data, err := json.Marshal(builders.ExampleBuild())
	require.NoError(t, err)

	t.Run("from stdin", func(t *testing.T) {
		cmd, out := newTestCommand(string(data))
		require.NoError(t, runEncode(cmd, nil))
		assert.Equal(t, testutils.TestExampleCode+"\n", out.String())
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "iop.json")
		require.NoError(t, os.WriteFile(path, data, 0o600))
		inputFile = path
		defer func() { inputFile = "" }()

		cmd, out := newTestCommand("")
		require.NoError(t, runEncode(cmd, nil))
		assert.Equal(t, testutils.TestExampleCode, strings.TrimSpace(out.String()))
	})

	t.Run("from yaml", func(t *testing.T) {
		cmd, out := newTestCommand("class: Iop\nlevel: 200\nstats:\n  melee_mastery: 40\nrelic_sub: 5\n" +
			"items:\n  - {item_id: 12345, slots: BGRW, sublimation: 3, assigned_mastery: FEW, assigned_res: unset}\n")
		require.NoError(t, runEncode(cmd, nil))
		assert.Equal(t, testutils.TestExampleCode, strings.TrimSpace(out.String()))
	})

	t.Run("unknown class", func(t *testing.T) {
		cmd, _ := newTestCommand(`{"class": "Necromancer"}`)
		err := runEncode(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown class")
	})

	t.Run("level overflow", func(t *testing.T) {
		cmd, _ := newTestCommand(`{"class": "Iop", "level": 256}`)
		err := runEncode(cmd, nil)
		assert.ErrorIs(t, err, buildcode.ErrFieldOverflow)
	})
}

func TestDecodeCommand(t *testing.T) {
	resetCodecFlags(t)

	cmd, out := newTestCommand("")
	require.NoError(t, runDecode(cmd, []string{testutils.TestExampleCode}))

	var b build.Build
	require.NoError(t, json.Unmarshal(out.Bytes(), &b))
	assert.Equal(t, builders.ExampleBuild(), &b)

	cmd, _ = newTestCommand("")
	err := runDecode(cmd, []string{"Ag"})
	assert.ErrorIs(t, err, buildcode.ErrUnsupportedVersion)
}

func TestDecodeCommandBase32(t *testing.T) {
	resetCodecFlags(t)
	codecName = "base32"

	code, err := buildcode.NewCodec(textcodec.Base32{}).EncodeString(builders.ExampleBuild())
	require.NoError(t, err)

	cmd, out := newTestCommand("")
	require.NoError(t, runDecode(cmd, []string{strings.ToLower(code)}))

	var b build.Build
	require.NoError(t, json.Unmarshal(out.Bytes(), &b))
	assert.Equal(t, builders.ExampleBuild(), &b)

	cmd, _ = newTestCommand("")
	err = runDecode(cmd, []string{"not base32!"})
	assert.ErrorIs(t, err, buildcode.ErrMalformedText)
}

func TestInspectCommand(t *testing.T) {
	resetCodecFlags(t)

	cmd, out := newTestCommand(testutils.TestExampleCode + "\n")
	require.NoError(t, runInspect(cmd, nil))

	text := out.String()
	assert.Contains(t, text, "version 1, 43 bytes, 1 items")
	assert.Contains(t, text, "OFFSET")
	assert.Contains(t, text, "items[0].item_id")
	assert.Contains(t, text, "3039")
}

func TestUnknownCodecFlag(t *testing.T) {
	resetCodecFlags(t)
	codecName = "base2048"

	cmd, _ := newTestCommand("")
	err := runDecode(cmd, []string{testutils.TestExampleCode})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown text codec")
}

func TestServerConfigValidate(t *testing.T) {
	valid := serverConfig{
		Port:      50051,
		RedisAddr: "localhost:6379",
		ShareTTL:  buildshare.DefaultShareTTL,
		TextCodec: "base32",
		IDKind:    "short",
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.Port = 0
	invalid.RedisAddr = ""
	invalid.TextCodec = "morse"
	invalid.IDKind = "snowflake"
	err := invalid.Validate()
	require.Error(t, err)
	for _, field := range []string{"port", "redis-addr", "text-codec", "id-kind"} {
		assert.Contains(t, err.Error(), field)
	}
}
