// solver.go
// The solver driver: breadth-first search over canonicalised puzzle
// states, using the move generator and deadlock detector to expand and
// prune the frontier.
//
package sokoban

import (
	"log"

	"github.com/dustin/go-humanize"
)

// SolverOptions configures the BFS driver. All fields are optional; the
// zero value runs an unbounded search with no progress reporting.
type SolverOptions struct {
	// ProgressEvery, if > 0, logs a progress line every that many dequeues.
	ProgressEvery int
	// SeenCap, if > 0, bounds the seen-encodings set to an LRU cache of
	// that size instead of an unbounded map.
	SeenCap int
	// OnProgress, if set, is called instead of the default log.Printf
	// line every ProgressEvery dequeues.
	OnProgress func(dequeued, visited, queued int)
}

// DefaultSolverOptions reports progress every 10000 dequeues.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{ProgressEvery: 10000}
}

// Result is the outcome of a solve attempt. An unsolved search is not an
// error — it's a valid, reportable outcome.
type Result struct {
	Solved bool
	Final  *Puzzle
	// Dequeued and VisitedCount report the search effort, for CLI summaries.
	Dequeued     int
	VisitedCount int
}

// Solve runs breadth-first search from initial until a solved state is
// found or the queue is exhausted. BFS over pushes (not individual agent
// steps) ensures the first solution found minimises push count.
//
// initial is not mutated; Solve canonicalises and clones internally.
func Solve(initial *Puzzle, opts SolverOptions) *Result {
	start := initial.Clone()
	start.Canonicalize()

	seen := newSeenSet(opts.SeenCap)
	seen.add(Encode(start))

	queue := []*Puzzle{start}
	dequeued := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dequeued++

		if opts.ProgressEvery > 0 && dequeued%opts.ProgressEvery == 0 {
			reportProgress(opts, dequeued, seen.len(), len(queue))
		}

		if current.IsSolved() {
			return &Result{Solved: true, Final: current, Dequeued: dequeued, VisitedCount: seen.len()}
		}

		detector := NewDetector(current.Board)
		for _, push := range GenerateMoves(current, true) {
		steps:
			for steps := 1; steps <= push.MaxSteps; steps++ {
				next := current.Clone()
				lastMoved := next.MoveBox(push.CratePos, push.Dir, steps)
				next.Canonicalize()

				encoding := Encode(next)
				if seen.contains(encoding) {
					continue
				}

				if detector.IsDeadlocked(next.Agent, next.Crates, lastMoved) {
					// A deadlock on step k can never be cleared by pushing
					// the same crate further in the same direction — the
					// crate only travels deeper into the same cul-de-sac.
					break steps
				}

				seen.add(encoding)
				queue = append(queue, next)
			}
		}
	}

	return &Result{Solved: false, Dequeued: dequeued, VisitedCount: seen.len()}
}

func reportProgress(opts SolverOptions, dequeued, visited, queued int) {
	if opts.OnProgress != nil {
		opts.OnProgress(dequeued, visited, queued)
		return
	}
	log.Printf("count: %s (visited %s, queued %s)",
		humanize.Comma(int64(dequeued)),
		humanize.Comma(int64(visited)),
		humanize.Comma(int64(queued)))
}
