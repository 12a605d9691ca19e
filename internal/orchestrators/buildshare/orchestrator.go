// Package buildshare implements the orchestrator behind build code
// encoding and share links
package buildshare

//go:generate mockgen -destination=mock/mock_service.go -package=buildsharemock github.com/KirkDiggler/build-share-api/internal/orchestrators/buildshare Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/build-share-api/internal/codec/buildcode"
	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/pkg/idgen"
	sharedbuild "github.com/KirkDiggler/build-share-api/internal/repositories/shared_build"
)

const (
	// DefaultShareTTL applies when neither the config nor the request set one
	DefaultShareTTL = 30 * 24 * time.Hour

	// MaxShareTTL caps the lifetime a caller may request
	MaxShareTTL = 365 * 24 * time.Hour

	// Attempts at finding a free share ID before giving up
	maxIDAttempts = 3
)

// Service defines the interface for build code operations
type Service interface {
	// Stateless codec operations
	EncodeBuild(ctx context.Context, input *EncodeBuildInput) (*EncodeBuildOutput, error)
	DecodeBuild(ctx context.Context, input *DecodeBuildInput) (*DecodeBuildOutput, error)
	InspectCode(ctx context.Context, input *InspectCodeInput) (*InspectCodeOutput, error)

	// Share links
	ShareBuild(ctx context.Context, input *ShareBuildInput) (*ShareBuildOutput, error)
	ResolveShare(ctx context.Context, input *ResolveShareInput) (*ResolveShareOutput, error)
	DeleteShare(ctx context.Context, input *DeleteShareInput) (*DeleteShareOutput, error)
}

// Config holds the dependencies for the build share orchestrator
type Config struct {
	Repository  sharedbuild.Repository
	IDGenerator idgen.Generator
	// TextCodec is the default text codec; nil selects textcodec.Default
	TextCodec textcodec.Codec
	ShareTTL  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ShareTTL < 0 || c.ShareTTL > MaxShareTTL {
		vb.Fieldf("ShareTTL", "must be between 0 and %s", MaxShareTTL)
	}
	return vb.Build()
}

type orchestrator struct {
	repo     sharedbuild.Repository
	idGen    idgen.Generator
	codec    *buildcode.Codec
	shareTTL time.Duration
}

// NewOrchestrator creates a new build share orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.ShareTTL
	if ttl == 0 {
		ttl = DefaultShareTTL
	}

	return &orchestrator{
		repo:     cfg.Repository,
		idGen:    cfg.IDGenerator,
		codec:    buildcode.NewCodec(cfg.TextCodec),
		shareTTL: ttl,
	}, nil
}

// codecFor returns the configured codec, or the one named by the request
func (o *orchestrator) codecFor(name string) (*buildcode.Codec, error) {
	if name == "" || name == o.codec.TextCodec() {
		return o.codec, nil
	}
	text, err := textcodec.Lookup(name)
	if err != nil {
		return nil, err
	}
	return buildcode.NewCodec(text), nil
}

// EncodeBuild packs a build into its text code
func (o *orchestrator) EncodeBuild(ctx context.Context, input *EncodeBuildInput) (*EncodeBuildOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}

	codec, err := o.codecFor(input.TextCodec)
	if err != nil {
		return nil, err
	}

	code, err := codec.EncodeString(input.Build)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode build")
	}

	slog.DebugContext(ctx, "encoded build",
		"class", input.Build.Class,
		"items", len(input.Build.Items),
		"text_codec", codec.TextCodec())

	return &EncodeBuildOutput{
		Code:      code,
		TextCodec: codec.TextCodec(),
		Version:   buildcode.CurrentVersion,
	}, nil
}

// DecodeBuild unpacks a text code into a build
func (o *orchestrator) DecodeBuild(_ context.Context, input *DecodeBuildInput) (*DecodeBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	codec, err := o.codecFor(input.TextCodec)
	if err != nil {
		return nil, err
	}

	data, err := codec.Bytes(input.Code)
	if err != nil {
		return nil, err
	}

	b, err := buildcode.Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode build")
	}

	return &DecodeBuildOutput{Build: b, Version: data[0]}, nil
}

// InspectCode reports the field layout of a text code
func (o *orchestrator) InspectCode(_ context.Context, input *InspectCodeInput) (*InspectCodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	codec, err := o.codecFor(input.TextCodec)
	if err != nil {
		return nil, err
	}

	layout, err := codec.InspectString(input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect build code")
	}

	return &InspectCodeOutput{Layout: layout}, nil
}

// ShareBuild stores a valid build code under a new share ID
func (o *orchestrator) ShareBuild(ctx context.Context, input *ShareBuildInput) (*ShareBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TTL < 0 || input.TTL > MaxShareTTL {
		return nil, errors.InvalidArgumentf("ttl must be between 0 and %s", MaxShareTTL)
	}

	// Only codes that decode are stored
	decoded, err := o.DecodeBuild(ctx, &DecodeBuildInput{
		Code:      input.Code,
		TextCodec: input.TextCodec,
	})
	if err != nil {
		return nil, err
	}

	codec, err := o.codecFor(input.TextCodec)
	if err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = o.shareTTL
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id := o.idGen.Generate()

		createOutput, err := o.repo.Create(ctx, sharedbuild.CreateInput{
			ID:      id,
			Code:    strings.TrimSpace(input.Code),
			Codec:   codec.TextCodec(),
			Version: decoded.Version,
			TTL:     ttl,
		})
		if err == nil {
			slog.InfoContext(ctx, "shared build",
				"id", id,
				"version", decoded.Version,
				"ttl", ttl)
			return &ShareBuildOutput{
				SharedBuild: createOutput.SharedBuild,
				Build:       decoded.Build,
			}, nil
		}
		if !errors.IsAlreadyExists(err) {
			return nil, errors.Wrap(err, "failed to store shared build")
		}

		slog.WarnContext(ctx, "share ID collision",
			"id", id,
			"attempt", attempt)
	}

	return nil, errors.Unavailablef("no free share ID after %d attempts", maxIDAttempts)
}

// ResolveShare loads a shared build code and decodes it
func (o *orchestrator) ResolveShare(ctx context.Context, input *ResolveShareInput) (*ResolveShareOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("share ID is required")
	}

	getOutput, err := o.repo.Get(ctx, sharedbuild.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get shared build %s", input.ID)
	}
	shared := getOutput.SharedBuild

	decoded, err := o.DecodeBuild(ctx, &DecodeBuildInput{
		Code:      shared.Code,
		TextCodec: shared.Codec,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "stored code for %s is unreadable", input.ID)
	}

	return &ResolveShareOutput{
		SharedBuild: shared,
		Build:       decoded.Build,
	}, nil
}

// DeleteShare removes a share link
func (o *orchestrator) DeleteShare(ctx context.Context, input *DeleteShareInput) (*DeleteShareOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("share ID is required")
	}

	if _, err := o.repo.Delete(ctx, sharedbuild.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete shared build %s", input.ID)
	}

	slog.InfoContext(ctx, "deleted shared build", "id", input.ID)

	return &DeleteShareOutput{}, nil
}
