// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// TimestampGenerator generates IDs with the format: prefix-<unix millis>.
// This matches the id shape handed out to players created without an
// explicit id (e.g. "player-1712345678901").
type TimestampGenerator struct {
	prefix string
}

// NewTimestamp creates a new timestamp-based generator with the given prefix
func NewTimestamp(prefix string) *TimestampGenerator {
	return &TimestampGenerator{prefix: prefix}
}

// Generate creates a new ID from the current time
func (g *TimestampGenerator) Generate() string {
	return fmt.Sprintf("%s-%d", g.prefix, time.Now().UnixMilli())
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
		return fmt.Sprintf("%s-%d", g.prefix, n)
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
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s-%s", g.prefix, id)
	}
	return id
}
