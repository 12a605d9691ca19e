package textcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/errors"
)

func TestCodecsRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x01},
		{0x01, 0x07, 0xc8, 0x00, 0xff, 0x80},
		make([]byte, 36+12*7),
	}

	for _, c := range []textcodec.Codec{textcodec.Base64URL{}, textcodec.Base32{}} {
		for _, p := range payloads {
			text := c.Encode(p)
			got, err := c.Decode(text)
			require.NoError(t, err, c.Name())
			assert.Equal(t, len(p), len(got), c.Name())
			if len(p) > 0 {
				assert.Equal(t, p, got, c.Name())
			}
		}
	}
}

func TestBase64URLIsURLSafe(t *testing.T) {
	text := textcodec.Base64URL{}.Encode([]byte{0xfb, 0xff, 0xbf, 0xfe})
	assert.NotContains(t, text, "+")
	assert.NotContains(t, text, "/")
	assert.NotContains(t, text, "=")
}

func TestBase32AcceptsLowerCase(t *testing.T) {
	c := textcodec.Base32{}
	data := []byte("build")
	got, err := c.Decode("  " + "mj2ws3de" + "\n")
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "MJ2WS3DE", c.Encode(data))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := textcodec.Base64URL{}.Decode("not*base64")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = textcodec.Base32{}.Decode("18!!")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBase32RejectsNonCanonicalText(t *testing.T) {
	c := textcodec.Base32{}
	require.Equal(t, "AE", c.Encode([]byte{0x01}))

	// "AF" differs from "AE" only in the unused trailing bits
	_, err := c.Decode("AF")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "non-canonical")

	got, err := c.Decode("ae")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, got)
}

func TestLookup(t *testing.T) {
	c, err := textcodec.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "base64url", c.Name())

	c, err = textcodec.Lookup("BASE32")
	require.NoError(t, err)
	assert.Equal(t, "base32", c.Name())

	_, err = textcodec.Lookup("base2048")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "base32, base64url")
	assert.Equal(t, []string{"base32", "base64url"}, textcodec.Names())
}
