package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_AllWalls(t *testing.T) {
	g := NewGrid(3, 5)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 15, g.Count(Wall))
	assert.Equal(t, []string{"#####", "#####", "#####"}, g.Lines())
}

func TestNewGrid_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 3) })
	assert.Panics(t, func() { NewGrid(3, -1) })
}

func TestGrid_GetSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	assert.False(t, g.Set(2, 0, Empty))
	assert.False(t, g.Set(0, -1, Empty))
	assert.Equal(t, Border, g.Get(-1, 0))
	assert.True(t, g.Set(1, 1, Key))
	assert.Equal(t, Key, g.GetAt(Position{Row: 1, Col: 1}))
}

func TestGrid_Perimeter(t *testing.T) {
	g := NewGrid(3, 3)
	assert.True(t, g.IsOnPerimeter(0, 0))
	assert.True(t, g.IsOnPerimeter(2, 1))
	assert.False(t, g.IsOnPerimeter(1, 1))
	assert.True(t, g.IsPlayablePosition(1, 1))
	assert.False(t, g.IsOnPerimeter(3, 3), "out of bounds is not perimeter")
}

func TestGrid_Framed(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 1, Empty)

	f := g.Framed(Border)
	require.Equal(t, 3, f.Rows())
	require.Equal(t, 5, f.Cols())
	assert.Equal(t, []string{"%%%%%", "%#.#%", "%%%%%"}, f.Lines())

	// The source grid is untouched.
	assert.Equal(t, []string{"#.#"}, g.Lines())
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(0, 0, Empty)
	assert.Equal(t, Wall, g.Get(0, 0))
	assert.Equal(t, Empty, c.Get(0, 0))
}

func TestParseGrid(t *testing.T) {
	lines := []string{"%%%X%", "%.K.%", "%@%%%"}
	g, err := ParseGrid(lines)
	require.NoError(t, err)
	assert.Equal(t, lines, g.Lines())
	assert.Equal(t, "", g.Validate())

	_, err = ParseGrid([]string{"###", "##"})
	assert.Error(t, err)

	_, err = ParseGrid([]string{"#?#"})
	assert.Error(t, err)

	_, err = ParseGrid(nil)
	assert.Error(t, err)
}

func TestCode_Classes(t *testing.T) {
	tests := []struct {
		code   Code
		open   bool
		portal bool
	}{
		{Wall, false, false},
		{Empty, true, false},
		{Border, false, false},
		{Enter, false, true},
		{Exit, false, true},
		{Key, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.code.Name(), func(t *testing.T) {
			assert.True(t, tt.code.IsValid())
			assert.Equal(t, tt.open, tt.code.IsOpen())
			assert.Equal(t, tt.portal, tt.code.IsPortal())
			assert.Len(t, tt.code.String(), 1)
		})
	}
	assert.False(t, Code('?').IsValid())
}

func TestCodes_Distinct(t *testing.T) {
	seen := map[Code]bool{}
	for _, c := range AllCodes() {
		assert.False(t, seen[c], "duplicate code %q", rune(c))
		seen[c] = true
	}
	assert.Len(t, seen, 6)
}

func TestDirection_Stride(t *testing.T) {
	for _, dir := range AllDirections() {
		dr, dc := dir.Delta()
		sr, sc := dir.Stride(2)
		assert.Equal(t, 2*dr, sr, dir.String())
		assert.Equal(t, 2*dc, sc, dir.String())

		p := Position{Row: 4, Col: 4}
		assert.Equal(t, p, p.Step(dir, 2).Step(dir.Opposite(), 2))
	}
	assert.False(t, Direction(7).IsValid())
	assert.Len(t, Position{}.Neighbors(), 4)
}
