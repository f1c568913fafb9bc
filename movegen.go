// movegen.go
// The move generator: enumerates all legal (crate, direction, steps)
// pushes from a given state, including multi-step runs.
//
package sokoban

import "sort"

// Push is a candidate push: the crate at CratePos can be pushed in
// direction Dir for any number of steps from 1 to MaxSteps.
type Push struct {
	CratePos int
	Dir      Direction
	MaxSteps int
}

// GenerateMoves enumerates every legal push from p, in deterministic
// order: crates in ascending index order, directions N, E, S, W.
//
// When reachableOnly is true (the solver's mode) a push is only yielded
// if the agent can actually reach the cell it would need to stand on.
// When false, only the crate-direction geometry is checked — used for
// inspection/debugging, not by the solver driver itself.
func GenerateMoves(p *Puzzle, reachableOnly bool) []Push {
	crates := make([]int, 0, len(p.Crates))
	for c := range p.Crates {
		crates = append(crates, c)
	}
	sort.Ints(crates)

	var pushes []Push
	for _, cratePos := range crates {
		for _, dir := range directionOrder {
			pushFrom, ok := Step(p.Board.Width, p.Board.Height, cratePos, dir.Opposite(), 1)
			if !ok {
				continue
			}
			if p.Crates[pushFrom] || !p.Board.At(pushFrom).IsSpace() {
				continue
			}
			if reachableOnly && !p.reachable[pushFrom] {
				continue
			}

			maxSteps := 0
			pos := cratePos
			for {
				next, ok := Step(p.Board.Width, p.Board.Height, pos, dir, 1)
				if !ok {
					break
				}
				flags := p.Board.At(next)
				if !flags.IsSpace() || !flags.IsValid() || p.Crates[next] {
					break
				}
				pos = next
				maxSteps++
			}

			if maxSteps >= 1 {
				pushes = append(pushes, Push{CratePos: cratePos, Dir: dir, MaxSteps: maxSteps})
			}
		}
	}
	return pushes
}
