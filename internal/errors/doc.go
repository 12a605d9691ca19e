// Package errors provides the structured error type used across build-share-api.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes at the handler boundary.
//
// # Basic Usage
//
//	err := errors.NotFoundf("shared build not found")
//	err := errors.Newf(errors.CodeOutOfRange, "level %d does not fit in one byte", level)
//
// Adding metadata:
//
//	err := errors.Newf(errors.CodeDataLoss, "item %d truncated", index).
//	    WithMeta("offset", offset).
//	    WithMeta("remaining", remaining)
//
// Wrapping a sentinel so callers can test the kind with errors.Is:
//
//	return errors.WrapWithCode(ErrTruncatedRecord, errors.CodeDataLoss, "header needs 36 bytes")
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // share expired or never existed
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). Meta travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError
// on the client side.
//
// # Layer-Specific Guidelines
//
// Codec layer:
//   - Wrap the codec sentinel (ErrTruncatedRecord, ...) with its code
//   - Record offsets and raw values in metadata
//
// Repository layer:
//   - Return NotFound for missing or expired shares
//   - Wrap redis errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap codec errors with context; code, meta and sentinel survive Wrap
//
// Handler layer:
//   - Convert errors to gRPC format
package errors
