package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/solvability"
)

// scriptedSource replays a fixed list of values, wrapping each into range.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

var testSizes = []struct{ rows, cols int }{
	{3, 3}, {3, 5}, {5, 3}, {5, 5}, {7, 9}, {11, 25}, {21, 21}, {27, 47},
}

func TestGenerate_RejectsTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range [][2]int{{2, 5}, {5, 2}, {2, 2}, {1, 1}, {0, 7}, {-3, 9}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			m, err := Generate(size[0], size[1], rng)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidDimensions), "got %v", err)
		})
	}
}

func TestGenerate_RejectsNilSource(t *testing.T) {
	_, err := Generate(5, 5, nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestGenerate_AlwaysSolvable(t *testing.T) {
	for _, size := range testSizes {
		for seed := int64(1); seed <= 25; seed++ {
			m, err := GenerateSeeded(size.rows, size.cols, seed)
			require.NoError(t, err)
			require.NoError(t, solvability.Validate(m), "%dx%d seed %d:\n%s", size.rows, size.cols, seed, m)
		}
	}
}

func TestGenerate_ShapeAndPortals(t *testing.T) {
	for _, size := range testSizes {
		t.Run(fmt.Sprintf("%dx%d", size.rows, size.cols), func(t *testing.T) {
			m, err := GenerateSeeded(size.rows, size.cols, 42)
			require.NoError(t, err)

			rows := m.Rows()
			require.Len(t, rows, size.rows)
			for _, line := range rows {
				assert.Len(t, line, size.cols)
			}

			assert.Equal(t, world.Position{Row: size.rows - 1, Col: 1}, m.Entry())
			assert.Equal(t, world.Position{Row: 0, Col: size.cols - 2}, m.Exit())
			assert.Equal(t, world.Enter, m.At(size.rows-1, 1))
			assert.Equal(t, world.Exit, m.At(0, size.cols-2))

			key := m.Key()
			assert.Equal(t, world.Key, m.At(key.Row, key.Col))
			assert.Equal(t, 1, key.Row%2, "key must be on a room row")
			assert.Equal(t, 1, key.Col%2, "key must be on a room column")
		})
	}
}

func TestGenerate_CodeCounts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := GenerateSeeded(11, 25, seed)
		require.NoError(t, err)

		g := m.Grid()
		assert.Equal(t, 1, g.Count(world.Enter))
		assert.Equal(t, 1, g.Count(world.Exit))
		assert.Equal(t, 1, g.Count(world.Key))
	}
}

func TestGenerate_BorderRing(t *testing.T) {
	m, err := GenerateSeeded(9, 13, 7)
	require.NoError(t, err)

	m.Grid().ForEachCell(func(row, col int, code world.Code) {
		onBorder := row == 0 || col == 0 || row == m.Height()-1 || col == m.Width()-1
		if onBorder {
			assert.Contains(t, []world.Code{world.Border, world.Enter, world.Exit}, code, "border cell %d,%d", row, col)
		} else {
			assert.NotContains(t, []world.Code{world.Border, world.Enter, world.Exit}, code, "interior cell %d,%d", row, col)
		}
	})
}

func TestGenerate_RoomsOpenAndPillarsClosed(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := GenerateSeeded(15, 21, seed)
		require.NoError(t, err)

		for row := 1; row < m.Height()-1; row++ {
			for col := 1; col < m.Width()-1; col++ {
				code := m.At(row, col)
				switch {
				case row%2 == 1 && col%2 == 1:
					assert.True(t, code.IsOpen(), "room %d,%d is %q", row, col, rune(code))
				case row%2 == 0 && col%2 == 0:
					assert.Equal(t, world.Wall, code, "pillar %d,%d", row, col)
				}
			}
		}
	}
}

func TestGenerate_CarvesSpanningTree(t *testing.T) {
	// Each opened room opens exactly one wall-slot, so open cells are 2*rooms-1.
	for _, size := range testSizes {
		m, err := GenerateSeeded(size.rows, size.cols, 3)
		require.NoError(t, err)

		rooms := roomSpan(size.rows-2) * roomSpan(size.cols-2)
		report := solvability.Check(m)
		assert.Equal(t, 2*rooms-1, report.OpenCells, "%dx%d", size.rows, size.cols)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := GenerateSeeded(21, 31, 1234)
	require.NoError(t, err)
	b, err := GenerateSeeded(21, 31, 1234)
	require.NoError(t, err)

	assert.Equal(t, a.Rows(), b.Rows())
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Steps(), b.Steps())

	seed, ok := a.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(1234), seed)

	c, err := Generate(21, 31, rand.New(rand.NewSource(1234)))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), c.Rows(), "seeded helper and injected source must agree")
	_, ok = c.Seed()
	assert.False(t, ok)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := GenerateSeeded(21, 31, 1)
	require.NoError(t, err)
	b, err := GenerateSeeded(21, 31, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows(), b.Rows())
}

func TestMaze_RowsIdempotent(t *testing.T) {
	m, err := GenerateSeeded(11, 25, 5)
	require.NoError(t, err)

	first := m.Rows()
	first[0] = "tampered"
	second := m.Rows()
	third := m.Rows()

	assert.Equal(t, second, third)
	assert.NotEqual(t, "tampered", second[0])

	g := m.Grid()
	g.Set(1, 1, world.Wall)
	assert.NotEqual(t, world.Wall, m.At(1, 1), "Grid must return a copy")
}

func TestMaze_String(t *testing.T) {
	m, err := GenerateSeeded(3, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, "%X%\n%K%\n%@%\n", m.String())
}

func TestGenerate_Smallest(t *testing.T) {
	// A 1x1 interior is a single room: already open, no walk at all.
	for seed := int64(0); seed < 10; seed++ {
		m, err := GenerateSeeded(3, 3, seed)
		require.NoError(t, err)
		assert.Equal(t, []string{"%X%", "%K%", "%@%"}, m.Rows())
		assert.Equal(t, 0, m.Steps())
	}
}

func TestGenerate_FiveByFive(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m, err := GenerateSeeded(5, 5, seed)
		require.NoError(t, err)

		rows := m.Rows()
		require.Len(t, rows, 5)

		for _, corner := range []world.Position{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 4, Col: 0}, {Row: 4, Col: 4}} {
			assert.Equal(t, world.Border, m.At(corner.Row, corner.Col))
		}
		assert.Equal(t, world.Enter, m.At(4, 1))
		assert.Equal(t, world.Exit, m.At(0, 3))
		assert.Equal(t, world.Wall, m.At(2, 2))

		keys := 0
		for row := 1; row <= 3; row++ {
			for col := 1; col <= 3; col++ {
				if m.At(row, col) == world.Key {
					keys++
				}
			}
		}
		assert.Equal(t, 1, keys)

		// Four rooms joined by exactly three of the four wall-slots.
		slots := 0
		for _, p := range []world.Position{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 3, Col: 2}} {
			if m.At(p.Row, p.Col) == world.Empty {
				slots++
			}
		}
		assert.Equal(t, 3, slots, "seed %d:\n%s", seed, m)
	}
}

func TestGenerate_EvenDimensionsCoerced(t *testing.T) {
	m, err := GenerateSeeded(6, 8, 11)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Height())
	assert.Equal(t, 9, m.Width())
	assert.NoError(t, solvability.Validate(m))

	assert.Equal(t, 3, NormalizeDimension(3))
	assert.Equal(t, 5, NormalizeDimension(4))
	assert.Equal(t, 2, NormalizeDimension(2))
}

func TestGenerate_StepBudget(t *testing.T) {
	_, err := GenerateSeeded(41, 41, 1, WithMaxSteps(1))
	assert.ErrorIs(t, err, ErrNotConverged)

	// Two rooms: the only legal first move opens the second one.
	m, err := GenerateSeeded(3, 5, 1, WithMaxSteps(1))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Steps())

	// A budget of zero means no cap.
	m, err = GenerateSeeded(41, 41, 1, WithMaxSteps(0))
	require.NoError(t, err)
	assert.Greater(t, m.Steps(), 0)
}

func TestGenerate_WithID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	m, err := GenerateSeeded(5, 5, 1, WithID(id))
	require.NoError(t, err)
	assert.Equal(t, id, m.ID())

	other, err := GenerateSeeded(5, 5, 1)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, other.ID())
}

func TestGenerate_ScriptedSource(t *testing.T) {
	// 3x7: interior 1x5 with rooms at columns 0, 2, 4.
	// Start at room column 0 (draws 0, 0), step East (the only legal move),
	// step East again (index 1 of [West East]), then the key on the middle
	// room (draws 0, 1).
	src := &scriptedSource{values: []int{0, 0, 0, 1, 0, 1}}
	m, err := Generate(3, 7, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"%%%%%X%", "%..K..%", "%@%%%%%"}, m.Rows())
	assert.Equal(t, 2, m.Steps())
	assert.Equal(t, 6, src.calls)
}

func TestGenerate_ConcurrentIndependentSources(t *testing.T) {
	const n = 8
	results := make([][]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := Generate(15, 15, rand.New(rand.NewSource(int64(i))))
			if err == nil {
				results[i] = m.Rows()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		want, err := GenerateSeeded(15, 15, int64(i))
		require.NoError(t, err)
		assert.Equal(t, want.Rows(), results[i])
	}
}

func TestBulldozer_LegalDirections(t *testing.T) {
	grid := world.NewGrid(3, 3)

	corner := bulldozer{pos: world.Position{Row: 0, Col: 0}}
	assert.Equal(t, []world.Direction{world.East, world.South}, corner.legalDirections(grid))

	opposite := bulldozer{pos: world.Position{Row: 2, Col: 2}}
	assert.Equal(t, []world.Direction{world.West, world.North}, opposite.legalDirections(grid))

	line := world.NewGrid(1, 1)
	alone := bulldozer{pos: world.Position{}}
	assert.Empty(t, alone.legalDirections(line))
}

func TestBulldozer_BreakWalls(t *testing.T) {
	grid := world.NewGrid(1, 5)
	grid.Set(0, 0, world.Empty)

	d := bulldozer{pos: world.Position{Row: 0, Col: 0}, dir: world.East}
	assert.True(t, d.breakWalls(grid))
	assert.Equal(t, []string{"...##"}, grid.Lines())
	assert.Equal(t, world.Position{Row: 0, Col: 2}, d.pos)

	// Walking back over open ground carves nothing but still moves.
	d.dir = world.West
	assert.False(t, d.breakWalls(grid))
	assert.Equal(t, []string{"...##"}, grid.Lines())
	assert.Equal(t, world.Position{Row: 0, Col: 0}, d.pos)
}

func TestDefaultGenerator(t *testing.T) {
	assert.Equal(t, "Bulldozer", DefaultGenerator.Name())
}
