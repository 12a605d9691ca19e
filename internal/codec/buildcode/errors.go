package buildcode

import (
	stderrors "errors"
	"fmt"

	"github.com/KirkDiggler/build-share-api/internal/errors"
)

// Error kinds returned by the codec. Test for them with errors.Is; the
// returned error is an *errors.Error carrying the matching code and
// metadata describing where decoding stopped.
var (
	// ErrUnsupportedVersion means the version tag is not one this package reads
	ErrUnsupportedVersion = stderrors.New("unsupported build code version")

	// ErrMalformedText means the text codec rejected the input
	ErrMalformedText = stderrors.New("malformed build code text")

	// ErrTruncatedRecord means fewer bytes remain than a header or item needs
	ErrTruncatedRecord = stderrors.New("truncated record")

	// ErrInvalidEnumValue means an enumeration byte names no member
	ErrInvalidEnumValue = stderrors.New("invalid enumeration value")

	// ErrFieldOverflow means a value does not fit its fixed-width field
	ErrFieldOverflow = stderrors.New("field overflow")
)

func unsupportedVersion(version uint8) *errors.Error {
	return errors.WrapWithCodef(ErrUnsupportedVersion, errors.CodeUnimplemented,
		"build code version %d is not supported", version).
		WithMeta("version", version)
}

func malformedText(codecName string, cause error) *errors.Error {
	var err error = ErrMalformedText
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedText, cause)
	}
	return errors.WrapWithCodef(err, errors.CodeInvalidArgument,
		"build code is not valid %s text", codecName).
		WithMeta("text_codec", codecName)
}

func truncated(section string, offset, need, remaining int) *errors.Error {
	return errors.WrapWithCodef(ErrTruncatedRecord, errors.CodeDataLoss,
		"%s at offset %d needs %d bytes, %d remain", section, offset, need, remaining).
		WithMeta("section", section).
		WithMeta("offset", offset).
		WithMeta("remaining", remaining)
}

func invalidEnum(field string, offset int, value uint8) *errors.Error {
	return errors.WrapWithCodef(ErrInvalidEnumValue, errors.CodeInvalidArgument,
		"%s value %d is not a known member", field, value).
		WithMeta("field", field).
		WithMeta("offset", offset).
		WithMeta("value", value)
}

func overflow(field string, value, maxValue int) *errors.Error {
	return errors.WrapWithCodef(ErrFieldOverflow, errors.CodeOutOfRange,
		"%s value %d does not fit in 0..%d", field, value, maxValue).
		WithMeta("field", field).
		WithMeta("value", value)
}
