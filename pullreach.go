// pullreach.go
// The pull-reachability analyser: floods backwards from every target,
// treating agent moves as pulls, to mark every cell that could ever
// legally host a crate. Run once at board construction (see board.go);
// its output becomes the Valid bit on each space cell.
//
// Implemented as an explicit slice-stack DFS rather than recursion, since
// corridors can run the full length of a large board.

package sokoban

// pullReachable returns every cell reachable by repeated pulls starting
// from the given targets, over the half-built cell grid (Valid bits not
// yet set — only Wall/Space classification is consulted).
func pullReachable(width, height int, cells []CellFlag, targets []int) []int {
	visited := make(map[int]bool, len(cells))
	var stack []int

	for _, target := range targets {
		if visited[target] {
			continue
		}
		stack = append(stack, target)
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited[current] {
				continue
			}
			visited[current] = true

			// A crate resting at `current` can be pulled one step onto
			// the neighbouring `boxPos` only if the puller, starting on
			// boxPos, can step back onto the cell one beyond it — so that
			// cell must be Space. Read forwards: an agent standing there
			// can push a crate from boxPos into current.
			for _, nd := range NeighboursWithDir(width, height, current) {
				boxPos := nd.Pos
				if cells[boxPos].IsWall() {
					continue
				}
				if pullerPos, ok := Step(width, height, boxPos, nd.Dir, 1); ok {
					if cells[pullerPos].IsSpace() {
						stack = append(stack, boxPos)
					}
				}
			}
		}
	}

	out := make([]int, 0, len(visited))
	for pos := range visited {
		out = append(out, pos)
	}
	return out
}
