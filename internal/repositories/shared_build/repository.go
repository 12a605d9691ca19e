// Package sharedbuild provides repository interface and types for shared build codes
package sharedbuild

import (
	"context"
	"time"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sharedbuildmock github.com/KirkDiggler/build-share-api/internal/repositories/shared_build Repository

// CreateInput contains parameters for storing a shared build
type CreateInput struct {
	ID      string
	Code    string
	Codec   string
	Version uint8
	TTL     time.Duration // How long the share should live
}

// CreateOutput contains the stored shared build
type CreateOutput struct {
	SharedBuild *build.SharedBuild
}

// GetInput contains parameters for retrieving a shared build
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved shared build
type GetOutput struct {
	SharedBuild *build.SharedBuild
}

// DeleteInput contains parameters for deleting a shared build
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a shared build
type DeleteOutput struct{}

// Repository defines the interface for shared build storage
type Repository interface {
	// Create stores a build code under input.ID
	// Returns errors.InvalidArgument for missing fields
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a shared build by ID
	// Returns errors.NotFound if it does not exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a shared build
	// Returns errors.NotFound if it does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
