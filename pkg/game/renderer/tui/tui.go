package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/renderer"
	"keymaze/pkg/game/solvability"
)

// Icon constants for the maze preview
const (
	IconWall   = "█"
	IconBorder = "█"
	IconEmpty  = "░"
	IconEnter  = "@"
	IconExit   = "X"
	IconKey    = "K"
	IconVoid   = " "
)

// gettext domain of the bundled catalogues
const textDomain = "default"

// dynamicGet is used for runtime translation lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

// InitLocale loads message catalogues from dir for the given language.
// Unknown languages fall back to the English message ids.
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, textDomain)
}

// Translate looks up msg in the active catalogue and formats it with args
func Translate(msg string, args ...any) string {
	return dynamicGet(msg, args...)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall    color.Style
	colorBorder  color.Style
	colorEmpty   color.Style
	colorEnter   color.Style
	colorExit    color.Style
	colorKey     color.Style
	colorHeading color.Style
	colorSubtle  color.Style
	colorGood    color.Style
	colorDenied  color.Style

	icons map[world.Code]string
	cells map[world.Code]color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, icons)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgRed}
	t.colorBorder = color.Style{color.FgRed, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorEnter = color.Style{color.FgGreen, color.OpBold}
	t.colorExit = color.Style{color.FgLightRed, color.OpBold}
	t.colorKey = color.Style{color.FgYellow, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorGood = color.Style{color.FgGreen}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.icons = map[world.Code]string{
		world.Wall:   IconWall,
		world.Border: IconBorder,
		world.Empty:  IconEmpty,
		world.Enter:  IconEnter,
		world.Exit:   IconExit,
		world.Key:    IconKey,
	}
	t.cells = map[world.Code]color.Style{
		world.Wall:   t.colorWall,
		world.Border: t.colorBorder,
		world.Empty:  t.colorEmpty,
		world.Enter:  t.colorEnter,
		world.Exit:   t.colorExit,
		world.Key:    t.colorKey,
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleGood:
		return t.colorGood.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(code world.Code) string {
	icon, ok := t.icons[code]
	if !ok {
		return IconVoid
	}
	return t.cells[code].Sprint(icon)
}

// RenderHeader writes the translated caption for a maze
func (t *TUIRenderer) RenderHeader(w io.Writer, index, total int, m *generator.Maze) error {
	caption := dynamicGet("Maze %d of %d (%dx%d)", index, total, m.Height(), m.Width())
	if seed, ok := m.Seed(); ok {
		caption += " " + dynamicGet("seed %d", seed)
	}
	_, err := fmt.Fprintln(w, t.StyleText(caption, renderer.StyleHeading))
	return err
}

// RenderMaze writes the maze with one colored glyph per cell
func (t *TUIRenderer) RenderMaze(w io.Writer, l solvability.Layout) error {
	var sb strings.Builder
	for row := 0; row < l.Height(); row++ {
		for col := 0; col < l.Width(); col++ {
			sb.WriteString(t.renderCell(l.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderReport writes a translated solvability summary
func (t *TUIRenderer) RenderReport(w io.Writer, r solvability.Report) error {
	status := t.StyleText(dynamicGet("solvable"), renderer.StyleGood)
	if !r.Solvable() {
		status = t.StyleText(dynamicGet("NOT solvable"), renderer.StyleDenied)
	}

	details := dynamicGet("%d of %d open cells reachable, %d component(s)", r.Reachable, r.OpenCells, r.Components)
	_, err := fmt.Fprintf(w, "%s %s\n", status, t.StyleText(details, renderer.StyleSubtle))
	return err
}

// RenderLegend writes what each glyph stands for
func (t *TUIRenderer) RenderLegend(w io.Writer) error {
	parts := make([]string, 0, len(world.AllCodes()))
	for _, code := range world.AllCodes() {
		parts = append(parts, t.renderCell(code)+" "+dynamicGet(code.Name()))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}
