// board.go
// Immutable per-puzzle terrain: width, height, cell flags, and the set of
// target indices. A Board never changes after NewBoard returns it and may
// be shared by aliasing between every Puzzle cloned from it.

package sokoban

import (
	"fmt"
	"sort"
	"strings"
)

// Board is the immutable terrain a Puzzle is played on.
type Board struct {
	Width, Height int
	Cells         []CellFlag
	Targets       []int // sorted, ascending
}

// NewBoard constructs a Board from parsed WALL/SPACE classification and a
// set of target cells, running the pull-reachability analyser once to mark
// the Valid bit on every cell that could ever legally host a crate.
//
// Every target must be a Space cell; the caller (the parser) is
// responsible for the outer-border-is-Wall invariant.
func NewBoard(width, height int, cells []CellFlag, targets []int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sokoban: board dimensions must be positive, got %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("sokoban: expected %d cells, got %d", width*height, len(cells))
	}
	sortedTargets := append([]int(nil), targets...)
	sort.Ints(sortedTargets)
	for _, t := range sortedTargets {
		if !cells[t].IsSpace() {
			return nil, fmt.Errorf("sokoban: target at %d is not a space cell", t)
		}
	}

	marked := append([]CellFlag(nil), cells...)
	for _, pos := range pullReachable(width, height, marked, sortedTargets) {
		marked[pos] |= Valid
	}

	return &Board{
		Width:   width,
		Height:  height,
		Cells:   marked,
		Targets: sortedTargets,
	}, nil
}

// At returns the flags of the cell at pos.
func (b *Board) At(pos int) CellFlag {
	return b.Cells[pos]
}

// IsTarget reports whether pos is one of the board's target cells.
func (b *Board) IsTarget(pos int) bool {
	for _, t := range b.Targets {
		if t == pos {
			return true
		}
	}
	return false
}

// Size returns the total number of cells on the board.
func (b *Board) Size() int {
	return b.Width * b.Height
}

// String renders the bare terrain (no agent, no crates): walls and
// floor only, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteString(b.Cells[y*b.Width+x].String())
		}
		if y != b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderValid renders the board with every Valid cell shown as 'O', for
// debugging the pull-reachability analysis.
func (b *Board) RenderValid() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			f := b.Cells[y*b.Width+x]
			switch {
			case f.IsWall():
				sb.WriteByte('#')
			case f.IsValid():
				sb.WriteByte('O')
			default:
				sb.WriteByte(' ')
			}
		}
		if y != b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

