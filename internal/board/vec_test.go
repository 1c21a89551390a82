package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecArithmetic(t *testing.T) {
	p := Vec{X: 3, Y: 4}

	assert.Equal(t, Vec{X: 4, Y: 3}, p.Add(NorthEast))
	assert.Equal(t, Vec{X: -3, Y: 3}, SouthWest.Mul(3))
	assert.Equal(t, Vec{X: 0, Y: 4}, p.Add(West.Mul(3)))
}

func TestDirectionsAreUnitVectors(t *testing.T) {
	seen := map[Vec]bool{}
	for _, d := range Directions {
		assert.False(t, seen[d], "duplicate direction %v", d)
		seen[d] = true

		assert.LessOrEqual(t, abs(d.X), 1)
		assert.LessOrEqual(t, abs(d.Y), 1)
		assert.NotEqual(t, Vec{}, d)
	}
	assert.Len(t, seen, 8)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestVecNotation(t *testing.T) {
	tests := []struct {
		in   string
		want Vec
	}{
		{"a1", Vec{X: 0, Y: 0}},
		{"d3", Vec{X: 3, Y: 2}},
		{"F5", Vec{X: 5, Y: 4}},
		{" h8 ", Vec{X: 7, Y: 7}},
		{"b12", Vec{X: 1, Y: 11}},
	}

	for _, tt := range tests {
		got, err := ParseVec(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, "d3", Vec{X: 3, Y: 2}.String())
	assert.Equal(t, "b12", Vec{X: 1, Y: 11}.String())
	assert.Equal(t, "(-1,-1)", NoMove.String())
}

func TestParseVecErrors(t *testing.T) {
	for _, in := range []string{"", "a", "3d", "a0", "a-1", "?4", "dd"} {
		_, err := ParseVec(in)
		require.ErrorIs(t, err, ErrBadCoordinate, "input %q", in)
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, BlackCell, Black.Cell())
	assert.Equal(t, WhiteCell, White.Cell())
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "White", White.Title())

	c, ok := WhiteCell.Color()
	assert.True(t, ok)
	assert.Equal(t, White, c)

	_, ok = EmptyCell.Color()
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{"black": Black, " White": White, "B": Black, "w": White} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseColor("red")
	assert.Error(t, err)
}
