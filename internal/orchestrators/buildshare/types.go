package buildshare

import (
	"time"

	"github.com/KirkDiggler/build-share-api/internal/codec/buildcode"
	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

// EncodeBuildInput defines the request for encoding a build
type EncodeBuildInput struct {
	Build *build.Build
	// TextCodec overrides the configured text codec when set
	TextCodec string
}

// EncodeBuildOutput defines the response for encoding a build
type EncodeBuildOutput struct {
	Code      string
	TextCodec string
	Version   uint8
}

// DecodeBuildInput defines the request for decoding a build code
type DecodeBuildInput struct {
	Code      string
	TextCodec string
}

// DecodeBuildOutput defines the response for decoding a build code
type DecodeBuildOutput struct {
	Build   *build.Build
	Version uint8
}

// InspectCodeInput defines the request for inspecting a build code
type InspectCodeInput struct {
	Code      string
	TextCodec string
}

// InspectCodeOutput defines the response for inspecting a build code
type InspectCodeOutput struct {
	Layout *buildcode.Layout
}

// ShareBuildInput defines the request for sharing a build code
type ShareBuildInput struct {
	Code      string
	TextCodec string
	TTL       time.Duration // Zero uses the configured share TTL
}

// ShareBuildOutput defines the response for sharing a build code
type ShareBuildOutput struct {
	SharedBuild *build.SharedBuild
	Build       *build.Build
}

// ResolveShareInput defines the request for resolving a share ID
type ResolveShareInput struct {
	ID string
}

// ResolveShareOutput defines the response for resolving a share ID
type ResolveShareOutput struct {
	SharedBuild *build.SharedBuild
	Build       *build.Build
}

// DeleteShareInput defines the request for removing a share
type DeleteShareInput struct {
	ID string
}

// DeleteShareOutput defines the response for removing a share
type DeleteShareOutput struct{}
