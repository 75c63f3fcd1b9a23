package codegen

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/pkg/util"
)

type fakeAllocator struct {
	n    int64
	fail bool
}

func (f *fakeAllocator) NextSequence(ctx context.Context) (int64, error) {
	if f.fail {
		return 0, errors.New("allocator down")
	}
	return atomic.AddInt64(&f.n, 1), nil
}

func TestGenerator_HashRandom(t *testing.T) {
	gen := NewGenerator(StrategyHashRandom, nil, 8, false)
	hash := util.HashURL("https://example.com")

	code, err := gen.Generate(context.Background(), hash)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.True(t, IsValidCode(code))
}

func TestGenerator_HashRandom_FreshCandidates(t *testing.T) {
	gen := NewGenerator(StrategyHashRandom, nil, 8, false)
	hash := util.HashURL("https://example.com")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := gen.Generate(context.Background(), hash)
		require.NoError(t, err)
		seen[code] = true
	}

	// Same URL must not produce a deterministic candidate stream.
	assert.Greater(t, len(seen), 1)
}

func TestGenerator_Counter(t *testing.T) {
	alloc := &fakeAllocator{}
	gen := NewGenerator(StrategyCounter, alloc, 8, false)

	first, err := gen.Generate(context.Background(), "")
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.GreaterOrEqual(t, len(first), MinCodeLength)

	// Monotonic counter values decode to increasing numbers.
	a, err := Decode(first)
	require.NoError(t, err)
	b, err := Decode(second)
	require.NoError(t, err)
	assert.Equal(t, a+1, b)
}

func TestGenerator_CounterUnavailable(t *testing.T) {
	t.Run("without fallback", func(t *testing.T) {
		gen := NewGenerator(StrategyCounter, &fakeAllocator{fail: true}, 8, false)

		_, err := gen.Generate(context.Background(), util.HashURL("https://example.com"))
		assert.ErrorIs(t, err, ErrSequenceUnavailable)
	})

	t.Run("with fallback", func(t *testing.T) {
		gen := NewGenerator(StrategyCounter, &fakeAllocator{fail: true}, 8, true)

		code, err := gen.Generate(context.Background(), util.HashURL("https://example.com"))
		require.NoError(t, err)
		assert.Len(t, code, 8)
	})

	t.Run("nil allocator", func(t *testing.T) {
		gen := NewGenerator(StrategyCounter, nil, 8, false)

		_, err := gen.Generate(context.Background(), "")
		assert.ErrorIs(t, err, ErrSequenceUnavailable)
	})
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen := NewGenerator("bogus", nil, 0, false)
	assert.Equal(t, StrategyHashRandom, gen.strategy)
	assert.Equal(t, MaxCodeLength, gen.length)
}
