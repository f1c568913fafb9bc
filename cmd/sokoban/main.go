// cmd/sokoban/main.go
// CLI front end: argument parsing, file I/O, progress printing. An
// external collaborator to the solver core — flag-based, plain stdout, a
// small summary at the end.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	sokoban "github.com/halldorsol/gosokoban"
)

func main() {
	cfg := sokoban.LoadConfig()

	puzzlesDir := flag.String("dir", cfg.PuzzlesDir, "directory puzzle files are resolved under")
	progressEvery := flag.Int("progress", cfg.ProgressInterval, "log a progress line every N dequeues (0 disables)")
	seenCap := flag.Int("seen-cap", cfg.SeenCap, "bound the seen-state set to this many entries (0 = unbounded)")
	format := flag.String("format", "text", "output format: text or yaml")
	flag.Parse()

	if err := run(flag.Args(), *puzzlesDir, *progressEvery, *seenCap, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, puzzlesDir string, progressEvery, seenCap int, format string) error {
	if len(args) < 1 || len(args) > 2 {
		return &sokoban.ArgumentError{Message: fmt.Sprintf("expected 1 or 2 positional arguments (file [index]), got %d", len(args))}
	}

	var selected int // 0 means "solve all"
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return &sokoban.ArgumentError{Message: fmt.Sprintf("puzzle index must be a positive integer, got %q", args[1])}
		}
		selected = n
	}

	path := filepath.Join(puzzlesDir, args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return &sokoban.IoError{Path: path, Err: err}
	}

	puzzles, err := sokoban.ParsePuzzles(data)
	if err != nil {
		return err
	}

	if selected > len(puzzles) {
		return &sokoban.ArgumentError{Message: fmt.Sprintf("puzzle index %d out of range (file has %d puzzles)", selected, len(puzzles))}
	}

	var outcomes []sokoban.PuzzleOutcome
	for i, puzzle := range puzzles {
		index := i + 1
		if selected != 0 && index != selected {
			continue
		}
		outcomes = append(outcomes, solveAndReport(puzzle, index, progressEvery, seenCap, format))
	}

	if format == "yaml" {
		text, err := sokoban.RenderYAML(outcomes)
		if err != nil {
			return err
		}
		fmt.Print(text)
	}
	return nil
}

func solveAndReport(puzzle *sokoban.Puzzle, index, progressEvery, seenCap int, format string) sokoban.PuzzleOutcome {
	if format != "yaml" {
		fmt.Printf("\n%s\nPuzzle %d:\n%s\n", dashes(50), index, puzzle)
	}

	opts := sokoban.SolverOptions{ProgressEvery: progressEvery, SeenCap: seenCap}
	if format != "yaml" {
		opts.OnProgress = func(dequeued, visited, queued int) {
			log.Printf("puzzle %d: count: %d (visited %d, queued %d)", index, dequeued, visited, queued)
		}
	}

	start := time.Now()
	result := sokoban.Solve(puzzle, opts)
	elapsed := time.Since(start)

	outcome := sokoban.PuzzleOutcome{
		Index:        index,
		Solved:       result.Solved,
		Dequeued:     result.Dequeued,
		VisitedCount: result.VisitedCount,
		Elapsed:      humanize.Time(start),
	}

	if format == "yaml" {
		if result.Solved {
			outcome.Moves = sokoban.RenderMoves(result.Final.Moves)
			outcome.FinalLayout = result.Final.String()
		}
		return outcome
	}

	if result.Solved {
		fmt.Printf("Solved in %s:\n%s\nMoves: %s\n", elapsed, result.Final, sokoban.RenderMoves(result.Final.Moves))
	} else {
		fmt.Printf("unsolved (%s)\n", elapsed)
	}
	return outcome
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
