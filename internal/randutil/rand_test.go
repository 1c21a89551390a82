package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(7), Seed(7))
	assert.NotZero(t, Seed(0))
	assert.GreaterOrEqual(t, Seed(0), int64(0))
}

func TestDerive(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		s := Derive(99, i)
		assert.False(t, seen[s], "stream %d collides", i)
		seen[s] = true
	}
	assert.Equal(t, Derive(5, 3), Derive(5, 3))
}
