// Package textcodec turns build codes into printable strings and back.
//
// The transforms are lossless and deterministic. They carry no framing of
// their own; the byte layout is owned by the build codec.
package textcodec

import (
	"encoding/base32"
	"encoding/base64"
	"sort"
	"strings"

	"github.com/KirkDiggler/build-share-api/internal/errors"
)

// Codec converts between raw bytes and printable text
type Codec interface {
	// Encode renders data as text
	Encode(data []byte) string
	// Decode recovers the bytes behind text
	Decode(text string) ([]byte, error)
	// Name returns the codec identifier used in flags and stored shares
	Name() string
}

// Base64URL is unpadded base64 over the URL-safe alphabet
type Base64URL struct{}

// Encode renders data as unpadded URL-safe base64
func (Base64URL) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses unpadded URL-safe base64
func (Base64URL) Decode(text string) ([]byte, error) {
	data, err := base64.RawURLEncoding.Strict().DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid base64url text")
	}
	return data, nil
}

// Name returns "base64url"
func (Base64URL) Name() string { return "base64url" }

var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// Base32 is unpadded RFC 4648 base32, for channels that fold case
type Base32 struct{}

// Encode renders data as unpadded upper-case base32
func (Base32) Encode(data []byte) string {
	return base32NoPad.EncodeToString(data)
}

// Decode parses unpadded base32, accepting either case. Text whose unused
// trailing bits are set is rejected so every payload has one spelling.
func (b Base32) Decode(text string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	data, err := base32NoPad.DecodeString(normalized)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid base32 text")
	}
	if b.Encode(data) != normalized {
		return nil, errors.InvalidArgument("invalid base32 text: non-canonical trailing bits")
	}
	return data, nil
}

// Name returns "base32"
func (Base32) Name() string { return "base32" }

// Default is the codec used when none is configured
var Default Codec = Base64URL{}

var registry = map[string]Codec{
	Base64URL{}.Name(): Base64URL{},
	Base32{}.Name():    Base32{},
}

// Lookup returns the codec registered under name. An empty name selects Default.
func Lookup(name string) (Codec, error) {
	if name == "" {
		return Default, nil
	}
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown text codec %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names lists the registered codec names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
