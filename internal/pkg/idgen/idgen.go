// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// shortEncoding is lower-case base32 without padding, readable in URLs
var shortEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// ShortGenerator generates short random IDs for share links
type ShortGenerator struct {
	prefix string
	size   int
}

// NewShort creates a generator of IDs carrying size random bytes. Every
// 5 bytes become 8 characters.
func NewShort(prefix string, size int) *ShortGenerator {
	if size <= 0 {
		size = 10
	}
	return &ShortGenerator{prefix: prefix, size: size}
}

// Generate creates a new ID with the format: prefix_random
func (g *ShortGenerator) Generate() string {
	randomBytes := make([]byte, g.size)
	if _, err := rand.Read(randomBytes); err != nil {
		// crypto/rand.Read only fails on a broken system
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	random := shortEncoding.EncodeToString(randomBytes)
	if g.prefix == "" {
		return random
	}
	return g.prefix + "_" + random
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// ULIDGenerator generates lexically time-ordered IDs
type ULIDGenerator struct {
	prefix  string
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULID creates a ULID generator with optional prefix
func NewULID(prefix string) *ULIDGenerator {
	return &ULIDGenerator{
		prefix:  prefix,
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Generate creates a new lower-case ULID
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	g.mu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("ulid.New failed: %v", err))
	}

	s := strings.ToLower(id.String())
	if g.prefix != "" {
		return g.prefix + "_" + s
	}
	return s
}

// Kinds lists the generator names New accepts
func Kinds() []string {
	return []string{"short", "ulid", "uuid"}
}

// New returns the generator named by kind: "short", "ulid" or "uuid"
func New(kind, prefix string) (Generator, error) {
	switch kind {
	case "", "short":
		return NewShort(prefix, 0), nil
	case "ulid":
		return NewULID(prefix), nil
	case "uuid":
		return NewUUID(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id generator %q", kind)
	}
}
