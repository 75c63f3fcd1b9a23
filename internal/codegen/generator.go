package codegen

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Strategy selects how short codes are derived
type Strategy string

const (
	// StrategyHashRandom derives codes from the URL hash mixed with
	// cryptographically random bytes. Codes are not enumerable. Default.
	StrategyHashRandom Strategy = "hash_random"
	// StrategyCounter encodes a shared monotonic counter in base62.
	// Collision-free by construction but exposes creation order.
	StrategyCounter Strategy = "counter"
)

// ErrSequenceUnavailable is returned when the counter strategy cannot reach
// its sequence allocator and fallback is disabled.
var ErrSequenceUnavailable = errors.New("sequence allocator unavailable")

// counterBase offsets the shared counter so counter-derived codes are at
// least MinCodeLength characters long.
var counterBase = CodeSpace(MinCodeLength - 1)

// SequenceAllocator hands out monotonically increasing integers shared
// across all service replicas. Gaps are acceptable, duplicates are not.
type SequenceAllocator interface {
	NextSequence(ctx context.Context) (int64, error)
}

// Generator produces short code candidates. Candidates from the hash_random
// strategy must be checked for uniqueness by the caller before acceptance;
// counter-derived codes are unique as long as the allocator never reuses a
// value.
type Generator struct {
	strategy Strategy
	seq      SequenceAllocator
	length   int
	fallback bool
}

// NewGenerator creates a Generator. seq may be nil for StrategyHashRandom.
func NewGenerator(strategy Strategy, seq SequenceAllocator, length int, fallback bool) *Generator {
	if length < MinCodeLength || length > MaxCodeLength {
		length = MaxCodeLength
	}
	if strategy != StrategyCounter {
		strategy = StrategyHashRandom
	}
	return &Generator{
		strategy: strategy,
		seq:      seq,
		length:   length,
		fallback: fallback,
	}
}

// Generate returns a short code candidate for the given URL hash (hex
// SHA-256). Each call with the same hash yields a fresh candidate.
func (g *Generator) Generate(ctx context.Context, urlHash string) (string, error) {
	if g.strategy == StrategyCounter {
		code, err := g.fromCounter(ctx)
		if err == nil {
			return code, nil
		}
		if !g.fallback {
			return "", fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
		}
		log.Warn().Err(err).Msg("Sequence allocator unavailable, falling back to hash_random")
	}
	return g.fromHashRandom(urlHash)
}

func (g *Generator) fromCounter(ctx context.Context) (string, error) {
	if g.seq == nil {
		return "", errors.New("no sequence allocator configured")
	}
	n, err := g.seq.NextSequence(ctx)
	if err != nil {
		return "", err
	}
	return Encode(counterBase + uint64(n)), nil
}

// fromHashRandom mixes the first 8 bytes of the URL hash with 8 random
// bytes, so candidates are tied to the URL but not predictable.
func (g *Generator) fromHashRandom(urlHash string) (string, error) {
	var hashBits uint64
	if len(urlHash) >= 16 {
		if b, err := hex.DecodeString(urlHash[:16]); err == nil {
			hashBits = binary.BigEndian.Uint64(b)
		}
	}

	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return EncodeToLength(hashBits^binary.BigEndian.Uint64(salt), g.length), nil
}
