package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/solvability"
)

func TestPlain_RoundTrip(t *testing.T) {
	m, err := generator.GenerateSeeded(9, 15, 21)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Current.RenderMaze(&buf, m))
	assert.Equal(t, m.String(), buf.String())

	g, err := world.ParseGrid(strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
	require.NoError(t, err)
	assert.Equal(t, m.Rows(), g.Lines())
}

func TestPlain_HeaderAndReport(t *testing.T) {
	m, err := generator.GenerateSeeded(5, 7, 4)
	require.NoError(t, err)

	p := &Plain{}
	var buf bytes.Buffer
	require.NoError(t, p.RenderHeader(&buf, 2, 3, m))
	require.NoError(t, p.RenderReport(&buf, solvability.Check(m)))

	out := buf.String()
	assert.Contains(t, out, "# maze 2/3 5x7 seed 4 id "+m.ID().String())
	assert.Contains(t, out, "# solvable: true")
	assert.Equal(t, "x", p.StyleText("x", StyleDenied))
}

func TestSetRenderer(t *testing.T) {
	prev := Current
	defer func() { Current = prev }()

	p := &Plain{}
	SetRenderer(p)
	assert.Same(t, p, Current)
}
