// Package buildcode packs character builds into versioned build codes.
//
// A build code is a byte string whose first byte is the format version.
// Decoding dispatches on that byte before interpreting anything else, so
// new layouts can be added without touching existing ones. The package is
// stateless and safe for concurrent use.
package buildcode

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/entities/build"
	"github.com/KirkDiggler/build-share-api/internal/errors"
)

// Format versions
const (
	VersionV1 uint8 = 1

	// CurrentVersion is the version Encode writes
	CurrentVersion = VersionV1
)

// format reads one layout version
type format struct {
	decode  func(data []byte) (*build.Build, error)
	inspect func(data []byte) (*Layout, error)
}

var formats = map[uint8]format{
	VersionV1: {decode: decodeV1, inspect: inspectV1},
}

// Layout describes the fields of an encoded build in wire order
type Layout struct {
	Version   uint8   `json:"version"`
	Size      int     `json:"size"`
	ItemCount int     `json:"item_count"`
	Fields    []Field `json:"fields"`
}

// Field is one decoded field of a build code
type Field struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Width  int    `json:"width"`
	Raw    []byte `json:"raw"`
	Value  string `json:"value"`
}

// Encode packs b using the current format version
func Encode(b *build.Build) ([]byte, error) {
	if b == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	return encodeV1(b)
}

// Decode unpacks a build code of any supported version. The returned
// build does not reference data.
func Decode(data []byte) (*build.Build, error) {
	f, err := lookupFormat(data)
	if err != nil {
		return nil, err
	}
	return f.decode(data)
}

// Inspect decodes data and reports every field with its offset and raw bytes
func Inspect(data []byte) (*Layout, error) {
	f, err := lookupFormat(data)
	if err != nil {
		return nil, err
	}
	return f.inspect(data)
}

// Versions lists the format versions Decode understands
func Versions() []uint8 {
	versions := make([]uint8, 0, len(formats))
	for v := range formats {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}

func lookupFormat(data []byte) (format, error) {
	if len(data) == 0 {
		return format{}, truncated("version", 0, 1, 0)
	}
	f, ok := formats[data[0]]
	if !ok {
		return format{}, unsupportedVersion(data[0])
	}
	return f, nil
}

// Codec adds a text representation on top of the byte format
type Codec struct {
	text textcodec.Codec
}

// NewCodec returns a Codec rendering codes with text. A nil text codec
// selects textcodec.Default.
func NewCodec(text textcodec.Codec) *Codec {
	if text == nil {
		text = textcodec.Default
	}
	return &Codec{text: text}
}

// TextCodec returns the name of the text codec in use
func (c *Codec) TextCodec() string {
	return c.text.Name()
}

// EncodeString packs b and renders it as text
func (c *Codec) EncodeString(b *build.Build) (string, error) {
	data, err := Encode(b)
	if err != nil {
		return "", err
	}
	return c.text.Encode(data), nil
}

// DecodeString parses text produced by EncodeString
func (c *Codec) DecodeString(code string) (*build.Build, error) {
	data, err := c.bytes(code)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// InspectString parses text produced by EncodeString and reports its layout
func (c *Codec) InspectString(code string) (*Layout, error) {
	data, err := c.bytes(code)
	if err != nil {
		return nil, err
	}
	return Inspect(data)
}

// Bytes parses the text form of a code without decoding the build
func (c *Codec) Bytes(code string) ([]byte, error) {
	return c.bytes(code)
}

func (c *Codec) bytes(code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, malformedText(c.text.Name(), nil)
	}
	data, err := c.text.Decode(code)
	if err != nil {
		return nil, malformedText(c.text.Name(), err)
	}
	return data, nil
}
