package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"

	"keymaze/pkg/engine/terminal"
	"keymaze/pkg/game/batch"
	"keymaze/pkg/game/config"
	"keymaze/pkg/game/devtools"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/renderer"
	"keymaze/pkg/game/renderer/tui"
	"keymaze/pkg/game/solvability"
)

// flags holds command-line overrides. Zero values leave the loaded config alone.
type flags struct {
	configPath string
	rows       int
	cols       int
	seed       int64
	count      int
	maxSteps   int
	workers    int
	locale     string
	fit        bool
	plain      bool
	check      bool
	pick       bool
	dumpPath   string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "YAML config file")
	flag.IntVar(&f.rows, "rows", 0, "maze rows including the border (odd, >= 3)")
	flag.IntVar(&f.cols, "cols", 0, "maze columns including the border (odd, >= 3)")
	flag.Int64Var(&f.seed, "seed", 0, "master seed (0 = from the clock)")
	flag.IntVar(&f.count, "count", 0, "number of mazes to generate")
	flag.IntVar(&f.maxSteps, "max-steps", 0, "bulldozer step budget per maze (0 = unbounded)")
	flag.IntVar(&f.workers, "workers", 0, "concurrent generators")
	flag.StringVar(&f.locale, "locale", "", "message locale (e.g. ru)")
	flag.BoolVar(&f.fit, "fit", false, "size the maze to fill the terminal")
	flag.BoolVar(&f.plain, "plain", false, "print raw cell codes without colors")
	flag.BoolVar(&f.check, "check", false, "print a solvability report for each maze")
	flag.BoolVar(&f.pick, "pick", false, "print one random maze of the batch instead of all")
	flag.StringVar(&f.dumpPath, "dump", "", "write a debug dump of the mazes to this file")
	flag.Parse()
	return f
}

// applyFlags overlays the command-line values that were set
func applyFlags(cfg *config.Config, f flags) {
	if f.rows != 0 {
		cfg.Rows = f.rows
	}
	if f.cols != 0 {
		cfg.Cols = f.cols
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.count != 0 {
		cfg.Count = f.count
	}
	if f.maxSteps != 0 {
		cfg.MaxSteps = f.maxSteps
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.fit {
		cfg.Rows, cfg.Cols = terminal.FitCurrent(generator.MinDimension)
	}
}

func initRenderer(cfg config.Config, plain bool) {
	tui.InitLocale(cfg.LocalesDir, cfg.Locale)

	if plain || !terminal.IsTerminal() {
		color.Enable = false
		renderer.SetRenderer(&renderer.Plain{})
		return
	}
	renderer.SetRenderer(tui.New())
}

func main() {
	f := parseFlags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	applyFlags(&cfg, f)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Config] %v", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	initRenderer(cfg, f.plain)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mazes, err := batch.Generate(ctx, batch.Request{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Count:    cfg.Count,
		Seed:     cfg.Seed,
		MaxSteps: cfg.MaxSteps,
		Workers:  cfg.Workers,
	})
	if err != nil {
		log.Fatalf("[Generator] %v", err)
	}

	if f.pick {
		m, err := batch.Pick(mazes, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			log.Fatalf("[Generator] %v", err)
		}
		mazes = []*generator.Maze{m}
	}

	if err := printMazes(mazes, f.check); err != nil {
		log.Fatalf("[Renderer] %v", err)
	}

	if f.dumpPath != "" {
		path, err := devtools.DumpMazeToFile(f.dumpPath, mazes...)
		if err != nil {
			log.Fatalf("[Devtools] %v", err)
		}
		fmt.Fprintln(os.Stderr, tui.Translate("Wrote map dump to %s", path))
	}
}

func printMazes(mazes []*generator.Maze, check bool) error {
	r := renderer.Current
	for i, m := range mazes {
		if err := r.RenderHeader(os.Stdout, i+1, len(mazes), m); err != nil {
			return err
		}
		if err := r.RenderMaze(os.Stdout, m); err != nil {
			return err
		}
		if check {
			if err := r.RenderReport(os.Stdout, solvability.Check(m)); err != nil {
				return err
			}
		}
		fmt.Println()
	}

	if legend, ok := r.(interface{ RenderLegend(w io.Writer) error }); ok {
		if err := legend.RenderLegend(os.Stdout); err != nil {
			return err
		}
	}
	fmt.Fprintln(os.Stderr, tui.Translate("Generated %d maze(s)", len(mazes)))
	return nil
}
