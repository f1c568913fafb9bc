package sokoban

import "testing"

// mutualBlockBoard builds:
//
//	#####
//	#$$.#
//	#####
//
// crates at 6 and 7, target at 8. Cell 6 is Space but never pull-reachable
// (only 7 and 8 are). Two crates can brace each other against this wall
// with no target on it, neither one movable.
func mutualBlockBoard(t *testing.T) *Board {
	t.Helper()
	width, height := 5, 3
	cells := make([]CellFlag, width*height)
	for i := range cells {
		cells[i] = Wall
	}
	for _, pos := range []int{6, 7, 8} {
		cells[pos] = Space
	}
	board, err := NewBoard(width, height, cells, []int{8})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return board
}

func TestDetectorTargetExemption(t *testing.T) {
	board := mutualBlockBoard(t)
	d := NewDetector(board)
	// A crate resting on its target is never deadlocked, regardless of
	// what else surrounds it.
	if d.IsDeadlocked(0, map[int]bool{8: true}, 8) {
		t.Errorf("IsDeadlocked(target) = true, want false")
	}
}

func TestDetectorDeadSquare(t *testing.T) {
	board := mutualBlockBoard(t)
	d := NewDetector(board)
	// Cell 6 is Space but was never proven pull-reachable from the only
	// target, so a crate resting there alone is a dead square.
	if !d.IsDeadlocked(0, map[int]bool{6: true}, 6) {
		t.Errorf("IsDeadlocked(dead square) = false, want true")
	}
}

func TestDetectorMutualBlockAgainstWall(t *testing.T) {
	board := mutualBlockBoard(t)
	d := NewDetector(board)
	crates := map[int]bool{6: true, 7: true}
	if !d.IsDeadlocked(0, crates, 7) {
		t.Errorf("IsDeadlocked(crate 7 braced against crate 6) = false, want true")
	}
}

func TestDetectorSingleCrateNotBlocked(t *testing.T) {
	board := mutualBlockBoard(t)
	d := NewDetector(board)
	// Crate 7 alone (no neighbour bracing it at 6) is pinned top/bottom
	// by the wall but has an open, valid path east to the target — not a
	// deadlock.
	crates := map[int]bool{7: true}
	if d.IsDeadlocked(0, crates, 7) {
		t.Errorf("IsDeadlocked(unbraced crate) = true, want false")
	}
}
