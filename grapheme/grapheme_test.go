package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	g := New("a", 97, 99)
	assert.Equal(t, "a", g.Value())
	assert.Equal(t, 97, g.Minimum())
	assert.Equal(t, 99, g.Maximum())
}

func TestFromRune(t *testing.T) {
	g := FromRune('ä')
	assert.Equal(t, "ä", g.Value())
	assert.Equal(t, 0xe4, g.Minimum())
	assert.Equal(t, 0xe4, g.Maximum())
}

func TestEqual(t *testing.T) {
	g := New("a", 1, 2)
	assert.True(t, g.Equal(New("a", 1, 2)))
	assert.False(t, g.Equal(New("b", 1, 2)))
	assert.False(t, g.Equal(New("a", 0, 2)))
	assert.False(t, g.Equal(New("a", 1, 3)))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Grapheme
		want int
	}{
		{"equal", New("a", 1, 2), New("a", 1, 2), 0},
		{"value first", New("a", 9, 9), New("b", 0, 0), -1},
		{"minimum next", New("a", 1, 5), New("a", 2, 3), -1},
		{"maximum last", New("a", 1, 2), New("a", 1, 3), -1},
		{"reversed", New("b", 0, 0), New("a", 9, 9), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "a", New("a", 97, 97).String())
	assert.Equal(t, "a[97-99]", New("a", 97, 99).String())
}

func TestClusterFromString(t *testing.T) {
	c := ClusterFromString("añc")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "añc", c.String())

	gs := c.Graphemes()
	assert.Equal(t, FromRune('a'), gs[0])
	assert.Equal(t, FromRune('ñ'), gs[1])
	assert.Equal(t, FromRune('c'), gs[2])

	assert.Zero(t, ClusterFromString("").Len())
}
