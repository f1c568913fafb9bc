// render.go
// Result rendering: converting a solved (or unsolved) state back to a
// printable layout and move trace. Out of scope for the solver core
// proper, but a complete repo needs it.
//
// The --format yaml mode uses gopkg.in/yaml.v3.

package sokoban

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// String renders the puzzle's current layout: terrain, crates ('$' or
// '*' on a target), targets ('.'), and the agent ('@').
func (p *Puzzle) String() string {
	return renderLayout(p.Board, p.Agent, p.Crates, nil)
}

// renderLayout is the shared grid-rendering routine used by Puzzle's
// String/RenderReachable. overlay, if non-nil, marks extra cells (e.g.
// '+' for reachable) without disturbing the agent's own cell.
func renderLayout(board *Board, agent int, crates map[int]bool, overlay map[int]byte) string {
	cells := make([]byte, board.Size())
	for i, f := range board.Cells {
		if f.IsWall() {
			cells[i] = '#'
		} else {
			cells[i] = ' '
		}
	}
	for c := range crates {
		cells[c] = '$'
	}
	for _, t := range board.Targets {
		if crates[t] {
			cells[t] = '*'
		} else {
			cells[t] = '.'
		}
	}
	for pos, ch := range overlay {
		if pos == agent {
			continue
		}
		cells[pos] = ch
	}
	cells[agent] = '@'

	var sb strings.Builder
	for y := 0; y < board.Height; y++ {
		sb.Write(cells[y*board.Width : (y+1)*board.Width])
		if y != board.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderMoves renders a move log as a sequence of direction letters.
func RenderMoves(moves []Direction) string {
	letters := make([]byte, len(moves))
	for i, d := range moves {
		letters[i] = d.Letter()
	}
	return string(letters)
}

// PuzzleOutcome is the structured, serializable summary of one solved (or
// attempted) puzzle, used by the CLI's --format yaml mode.
type PuzzleOutcome struct {
	Index        int    `yaml:"index"`
	Solved       bool   `yaml:"solved"`
	Moves        string `yaml:"moves,omitempty"`
	Dequeued     int    `yaml:"dequeued"`
	VisitedCount int    `yaml:"visitedCount"`
	Elapsed      string `yaml:"elapsed"`
	FinalLayout  string `yaml:"finalLayout,omitempty"`
}

// RenderYAML marshals a batch of outcomes with gopkg.in/yaml.v3.
func RenderYAML(outcomes []PuzzleOutcome) (string, error) {
	out, err := yaml.Marshal(outcomes)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
