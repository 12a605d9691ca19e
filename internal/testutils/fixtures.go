package testutils

import (
	"time"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

const (
	// TestShareID is the default share ID for test fixtures
	TestShareID = "bld_test123"

	// TestExampleCode is builders.ExampleBuild rendered with base64url
	TestExampleCode = "AQfIAAAAAAAAKAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABQAAMDkOAAMNDw"
)

// TestNow is the fixed instant used by test clocks
var TestNow = time.Date(2025, 7, 20, 17, 15, 0, 0, time.UTC)

// CreateTestSharedBuild creates a shared build for the example code
func CreateTestSharedBuild(id string, ttl time.Duration) *build.SharedBuild {
	return &build.SharedBuild{
		ID:        id,
		Code:      TestExampleCode,
		Codec:     "base64url",
		Version:   1,
		CreatedAt: TestNow,
		ExpiresAt: TestNow.Add(ttl),
	}
}
