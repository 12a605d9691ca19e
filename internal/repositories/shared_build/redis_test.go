package sharedbuild_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/build-share-api/internal/redis"
	sharedbuild "github.com/KirkDiggler/build-share-api/internal/repositories/shared_build"
	"github.com/KirkDiggler/build-share-api/internal/testutils"
)

type RedisSharedBuildTestSuite struct {
	suite.Suite
	client  redisclient.Client
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    sharedbuild.Repository
	ctx     context.Context
}

func TestRedisSharedBuildSuite(t *testing.T) {
	suite.Run(t, new(RedisSharedBuildTestSuite))
}

func (s *RedisSharedBuildTestSuite) SetupTest() {
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(testutils.TestNow)
	s.ctx = context.Background()

	repo, err := sharedbuild.NewRedisRepository(&sharedbuild.Config{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSharedBuildTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisSharedBuildTestSuite) create(id string, ttl time.Duration) *sharedbuild.CreateOutput {
	out, err := s.repo.Create(s.ctx, sharedbuild.CreateInput{
		ID:      id,
		Code:    testutils.TestExampleCode,
		Codec:   "base64url",
		Version: 1,
		TTL:     ttl,
	})
	s.Require().NoError(err)
	return out
}

func (s *RedisSharedBuildTestSuite) TestNewRedisRepository() {
	testCases := []struct {
		name    string
		config  *sharedbuild.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &sharedbuild.Config{Client: s.client, Clock: s.clock},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &sharedbuild.Config{Clock: s.clock},
			wantErr: true,
			errMsg:  "Client: is required",
		},
		{
			name:    "error with nil clock",
			config:  &sharedbuild.Config{Client: s.client},
			wantErr: true,
			errMsg:  "Clock: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := sharedbuild.NewRedisRepository(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisSharedBuildTestSuite) TestCreateAndGet() {
	out := s.create(testutils.TestShareID, time.Hour)

	expected := testutils.CreateTestSharedBuild(testutils.TestShareID, time.Hour)
	s.Equal(expected.ID, out.SharedBuild.ID)
	s.Equal(expected.Code, out.SharedBuild.Code)
	s.True(expected.ExpiresAt.Equal(out.SharedBuild.ExpiresAt))

	s.True(s.mr.Exists(sharedbuild.GetKey(testutils.TestShareID)))
	s.Equal(time.Hour, s.mr.TTL(sharedbuild.GetKey(testutils.TestShareID)))

	got, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: testutils.TestShareID})
	s.Require().NoError(err)
	s.Equal(testutils.TestExampleCode, got.SharedBuild.Code)
	s.Equal("base64url", got.SharedBuild.Codec)
	s.Equal(uint8(1), got.SharedBuild.Version)
	s.True(testutils.TestNow.Equal(got.SharedBuild.CreatedAt))
	s.True(expected.ExpiresAt.Equal(got.SharedBuild.ExpiresAt))
}

func (s *RedisSharedBuildTestSuite) TestCreateDefaultTTL() {
	s.create(testutils.TestShareID, 0)
	s.Equal(sharedbuild.DefaultTTL, s.mr.TTL(sharedbuild.GetKey(testutils.TestShareID)))
}

func (s *RedisSharedBuildTestSuite) TestCreateDuplicateID() {
	s.create(testutils.TestShareID, time.Hour)

	_, err := s.repo.Create(s.ctx, sharedbuild.CreateInput{
		ID:   testutils.TestShareID,
		Code: "other",
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: testutils.TestShareID})
	s.Require().NoError(err)
	s.Equal(testutils.TestExampleCode, got.SharedBuild.Code)
}

func (s *RedisSharedBuildTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		input  sharedbuild.CreateInput
		errMsg string
	}{
		{name: "missing id", input: sharedbuild.CreateInput{Code: "x"}, errMsg: "share ID cannot be empty"},
		{name: "missing code", input: sharedbuild.CreateInput{ID: "x"}, errMsg: "build code cannot be empty"},
		{name: "negative ttl", input: sharedbuild.CreateInput{ID: "x", Code: "x", TTL: -time.Second}, errMsg: "ttl must not be negative"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisSharedBuildTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: "bld_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, sharedbuild.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSharedBuildTestSuite) TestGetExpiredByRedis() {
	s.create(testutils.TestShareID, time.Minute)
	s.mr.FastForward(2 * time.Minute)

	_, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: testutils.TestShareID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSharedBuildTestSuite) TestGetExpiredByClock() {
	s.create(testutils.TestShareID, time.Minute)
	s.clock.Advance(2 * time.Minute)

	_, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: testutils.TestShareID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "has expired")
	s.False(s.mr.Exists(sharedbuild.GetKey(testutils.TestShareID)))
}

func (s *RedisSharedBuildTestSuite) TestGetCorruptPayload() {
	s.Require().NoError(s.mr.Set(sharedbuild.GetKey("bld_bad"), "{not json"))

	_, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: "bld_bad"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisSharedBuildTestSuite) TestDelete() {
	s.create(testutils.TestShareID, time.Hour)

	_, err := s.repo.Delete(s.ctx, sharedbuild.DeleteInput{ID: testutils.TestShareID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(sharedbuild.GetKey(testutils.TestShareID)))

	_, err = s.repo.Delete(s.ctx, sharedbuild.DeleteInput{ID: testutils.TestShareID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, sharedbuild.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSharedBuildTestSuite) TestStorageFailure() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, sharedbuild.GetInput{ID: testutils.TestShareID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
