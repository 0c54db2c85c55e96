// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/solvability"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "map.txt"

// DumpMazeToFile writes a full debug dump of the mazes to path: metadata,
// legend, the raw rows and the solvability audit of each maze. Returns the
// absolute path written.
func DumpMazeToFile(path string, mazes ...*generator.Maze) (string, error) {
	if len(mazes) == 0 {
		return "", fmt.Errorf("no maze")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, mazes...); err != nil {
		return "", err
	}

	return absPath, nil
}

// WriteDump writes the dump format to w
func WriteDump(w io.Writer, mazes ...*generator.Maze) error {
	ew := &errWriter{w: w}

	ew.println("=== MAZE DUMP ===")
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend (cell codes) ---")
	for _, code := range world.AllCodes() {
		ew.printf("%c = %s\n", rune(code), code.Name())
	}
	ew.println("")

	for i, m := range mazes {
		seed, seeded := m.Seed()
		report := solvability.Check(m)

		// --- Metadata ---
		ew.printf("--- Maze %d ---\n", i+1)
		ew.printf("id: %s\n", m.ID())
		ew.printf("grid_rows: %d\n", m.Height())
		ew.printf("grid_cols: %d\n", m.Width())
		if seeded {
			ew.printf("seed: %d\n", seed)
		} else {
			ew.println("seed: external")
		}
		ew.printf("steps: %d\n", m.Steps())
		ew.println("coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
		ew.printf("entry_cell: %d,%d\n", m.Entry().Row, m.Entry().Col)
		ew.printf("exit_cell: %d,%d\n", m.Exit().Row, m.Exit().Col)
		ew.printf("key_cell: %d,%d\n", m.Key().Row, m.Key().Col)
		ew.printf("open_cells: %d\n", report.OpenCells)
		ew.printf("reachable_from_entry: %d\n", report.Reachable)
		ew.printf("components: %d\n", report.Components)
		ew.printf("solvable: %v\n", report.Solvable())
		ew.println("")

		// --- Map ---
		ew.println("--- Map ---")
		for _, line := range m.Rows() {
			ew.println(line)
		}
		ew.println("")
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
