// Package v1alpha1 handles the build code gRPC service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/orchestrators/buildshare"
)

// Optional request metadata. A text codec other than the server's default
// applies to Encode, Decode, Inspect and Share; a share TTL (Go duration
// syntax, e.g. "72h") applies to Share.
const (
	MetadataTextCodec = "x-text-codec"
	MetadataShareTTL  = "x-share-ttl"
)

// HandlerConfig holds dependencies for the build code handler
type HandlerConfig struct {
	BuildService buildshare.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.BuildService == nil {
		return errors.InvalidArgument("build service is required")
	}
	return nil
}

// Handler implements the build code gRPC service
type Handler struct {
	UnimplementedBuildCodeServiceServer
	buildService buildshare.Service
}

// NewHandler creates a new build code handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		buildService: cfg.BuildService,
	}, nil
}

// SharedBuild is the JSON shape of a share returned by Share and Resolve
type SharedBuild struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Codec     string       `json:"codec"`
	Version   uint8        `json:"version"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
	Build     *build.Build `json:"build"`
}

// Encode packs the build held in req into a build code
func (h *Handler) Encode(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	if req == nil || len(req.GetFields()) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build is required"))
	}

	b, err := StructToBuild(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	opts, err := readOptions(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.EncodeBuild(ctx, &buildshare.EncodeBuildInput{
		Build:     b,
		TextCodec: opts.textCodec,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return wrapperspb.String(out.Code), nil
}

// Decode unpacks a build code
func (h *Handler) Decode(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	code := strings.TrimSpace(req.GetValue())
	if code == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("code is required"))
	}

	opts, err := readOptions(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.DecodeBuild(ctx, &buildshare.DecodeBuildInput{
		Code:      code,
		TextCodec: opts.textCodec,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out.Build)
}

// Inspect reports the field layout of a build code
func (h *Handler) Inspect(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	code := strings.TrimSpace(req.GetValue())
	if code == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("code is required"))
	}

	opts, err := readOptions(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.InspectCode(ctx, &buildshare.InspectCodeInput{
		Code:      code,
		TextCodec: opts.textCodec,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(out.Layout)
}

// Share stores a build code and returns its share record
func (h *Handler) Share(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	code := strings.TrimSpace(req.GetValue())
	if code == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("code is required"))
	}

	opts, err := readOptions(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.ShareBuild(ctx, &buildshare.ShareBuildInput{
		Code:      code,
		TextCodec: opts.textCodec,
		TTL:       opts.shareTTL,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(convertSharedBuild(out.SharedBuild, out.Build))
}

// Resolve looks up a share ID
func (h *Handler) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := strings.TrimSpace(req.GetValue())
	if id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("share id is required"))
	}

	out, err := h.buildService.ResolveShare(ctx, &buildshare.ResolveShareInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(convertSharedBuild(out.SharedBuild, out.Build))
}

// Delete removes a share
func (h *Handler) Delete(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	id := strings.TrimSpace(req.GetValue())
	if id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("share id is required"))
	}

	if _, err := h.buildService.DeleteShare(ctx, &buildshare.DeleteShareInput{ID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &emptypb.Empty{}, nil
}

type requestOptions struct {
	textCodec string
	shareTTL  time.Duration
}

// readOptions collects the optional settings sent as request metadata
func readOptions(ctx context.Context) (requestOptions, error) {
	var opts requestOptions

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return opts, nil
	}

	if v := md.Get(MetadataTextCodec); len(v) > 0 {
		opts.textCodec = strings.TrimSpace(v[0])
	}
	if v := md.Get(MetadataShareTTL); len(v) > 0 && strings.TrimSpace(v[0]) != "" {
		ttl, err := time.ParseDuration(strings.TrimSpace(v[0]))
		if err != nil || ttl <= 0 {
			return opts, errors.InvalidArgumentf("%s must be a positive duration, got %q", MetadataShareTTL, v[0]).
				WithMeta("field", MetadataShareTTL)
		}
		opts.shareTTL = ttl
	}

	return opts, nil
}

func convertSharedBuild(shared *build.SharedBuild, b *build.Build) *SharedBuild {
	if shared == nil {
		return nil
	}
	return &SharedBuild{
		ID:        shared.ID,
		Code:      shared.Code,
		Codec:     shared.Codec,
		Version:   shared.Version,
		CreatedAt: shared.CreatedAt,
		ExpiresAt: shared.ExpiresAt,
		Build:     b,
	}
}

func respond(v any) (*structpb.Struct, error) {
	st, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return st, nil
}

// ToStruct converts any JSON-serialisable value into a Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}

	st := &structpb.Struct{}
	if err := protojson.Unmarshal(data, st); err != nil {
		return nil, errors.Wrap(err, "failed to convert response")
	}
	return st, nil
}

// StructToBuild reads a build from its JSON form carried in st
func StructToBuild(st *structpb.Struct) (*build.Build, error) {
	data, err := protojson.Marshal(st)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read build")
	}

	var b build.Build
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid build")
	}
	b.Normalize()
	return &b, nil
}

// FromStruct decodes the JSON form carried in st into out
func FromStruct(st *structpb.Struct, out any) error {
	data, err := protojson.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
