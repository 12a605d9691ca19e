package sharedbuild

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/build-share-api/internal/redis"
)

const (
	// Key pattern: shared_build:{id}
	keyPrefix = "shared_build:"

	// DefaultTTL applies when CreateInput.TTL is zero
	DefaultTTL = 30 * 24 * time.Hour

	// Error messages
	errIDEmpty   = "share ID cannot be empty"
	errCodeEmpty = "build code cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for shared builds
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a build code under input.ID with the requested TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.Code == "" {
		return nil, errors.InvalidArgument(errCodeEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgumentf("ttl must not be negative, got %s", input.TTL)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	shared := &build.SharedBuild{
		ID:        input.ID,
		Code:      input.Code,
		Codec:     input.Codec,
		Version:   input.Version,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(shared)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal shared build")
	}

	key := GetKey(input.ID)
	created, err := r.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store shared build %s", input.ID)
	}
	if !created {
		return nil, errors.New(errors.CodeAlreadyExists, "share ID already in use").WithMeta("id", input.ID)
	}

	slog.DebugContext(ctx, "stored shared build",
		"id", input.ID,
		"version", input.Version,
		"ttl", ttl)

	return &CreateOutput{SharedBuild: shared}, nil
}

// Get retrieves a shared build by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := GetKey(input.ID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("shared build %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get shared build %s", input.ID)
	}

	var shared build.SharedBuild
	if err := json.Unmarshal([]byte(result), &shared); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal shared build %s", input.ID)
	}

	// Redis expiry is the primary mechanism; the clock check covers a
	// server whose TTL has not fired yet
	if r.clock.Now().After(shared.ExpiresAt) {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			slog.WarnContext(ctx, "failed to remove expired shared build",
				"id", input.ID,
				"error", err)
		}
		return nil, errors.NotFoundf("shared build %s has expired", input.ID)
	}

	return &GetOutput{SharedBuild: &shared}, nil
}

// Delete removes a shared build
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete shared build %s", input.ID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("shared build %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a shared build
// Exposed for testing purposes
func GetKey(id string) string {
	return keyPrefix + id
}
