package sokoban

import "testing"

func TestGenerateMovesReachableOnly(t *testing.T) {
	board := corridorBoard(t)
	p := NewPuzzle(board, 8, map[int]bool{9: true})

	pushes := GenerateMoves(p, true)
	if len(pushes) != 1 {
		t.Fatalf("GenerateMoves = %v, want exactly one legal push", pushes)
	}
	got := pushes[0]
	want := Push{CratePos: 9, Dir: East, MaxSteps: 2}
	if got != want {
		t.Errorf("GenerateMoves()[0] = %+v, want %+v", got, want)
	}
}

func TestGenerateMovesIgnoresReachabilityWhenAsked(t *testing.T) {
	board := corridorBoard(t)
	// Agent at 8 cannot reach 11, east of the crate at 10, so a West push
	// onto the Valid cell 9 is geometrically legal but practically
	// unreachable.
	p := NewPuzzle(board, 8, map[int]bool{10: true})

	restricted := GenerateMoves(p, true)
	unrestricted := GenerateMoves(p, false)
	if len(unrestricted) <= len(restricted) {
		t.Errorf("ignoring reachability should surface additional candidate pushes: restricted=%v unrestricted=%v", restricted, unrestricted)
	}
}

func TestGenerateMovesOrdersByCrateThenDirection(t *testing.T) {
	board := corridorBoard(t)
	p := NewPuzzle(board, 8, map[int]bool{9: true, 12: true})
	pushes := GenerateMoves(p, false)
	if len(pushes) == 0 {
		t.Fatalf("expected at least one candidate push")
	}
	for i := 1; i < len(pushes); i++ {
		if pushes[i-1].CratePos > pushes[i].CratePos {
			t.Fatalf("pushes not ordered by ascending crate position: %v", pushes)
		}
		if pushes[i-1].CratePos == pushes[i].CratePos && pushes[i-1].Dir > pushes[i].Dir {
			t.Fatalf("pushes for the same crate not ordered N,E,S,W: %v", pushes)
		}
	}
}
