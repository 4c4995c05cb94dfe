package engine

import "github.com/amylase/ricochet-robots/internal/board"

// Solver runs the forward breadth-first search that finds a minimum-move
// solution from a given starting state. Every edge in the successor graph
// costs exactly one move, so a plain unweighted BFS suffices; the winning
// path is recovered from a back-edge map rather than a scored search tree.
//
// A Solver holds no per-puzzle state: each call to Solve allocates its own
// visited set and back-edge map and releases them on return, so a single
// Solver value may be reused, or shared, across unrelated puzzles.
type Solver struct{}

// NewSolver returns a ready-to-use forward solver.
func NewSolver() *Solver {
	return &Solver{}
}

// backEdge records, for one successor state, the move that produced it and
// the predecessor state it was produced from. Keying this by fingerprint
// instead of an append-only log gives O(k) path reconstruction rather than
// the O(k * queue size) a linear scan would cost.
type backEdge struct {
	move board.Move
	pred board.GameState
}

// Solve returns a minimum-length sequence of moves that carries initial to
// some winning state of spec, or nil if no winning state is reachable. When
// initial is already winning the result is an empty, non-nil slice.
//
// Unlike Maximizer.Maximize, Solve does not fold equivalent states together
// in its visited set: every distinct robot arrangement is explored on its
// own.
func (s *Solver) Solve(spec *board.GameSpec, initial board.GameState) []board.Move {
	if spec.IsWinningState(initial) {
		return []board.Move{}
	}
	visited := NewVisitedSet()
	edges := make(map[uint32]backEdge)

	queue := []board.GameState{initial}
	visited.Mark(initial.Fingerprint())

	var final board.GameState
	found := false

outer:
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, succ := range spec.NextStates(cur) {
			if succ.State == cur {
				continue // no-op move
			}
			fp := succ.State.Fingerprint()
			if visited.Test(fp) {
				continue
			}
			visited.Mark(fp)
			edges[fp] = backEdge{move: succ.Move, pred: cur}

			if spec.IsWinningState(succ.State) {
				final = succ.State
				found = true
				break outer
			}
			queue = append(queue, succ.State)
		}
	}

	if !found {
		return nil
	}
	return reconstruct(edges, initial, final)
}

// Depth returns only the length of a minimum-length solution, or -1 if no
// winning state is reachable. It skips the back-edge map entirely, as a
// fast path for callers that need the solution length but not the moves.
func (s *Solver) Depth(spec *board.GameSpec, initial board.GameState) int {
	if spec.IsWinningState(initial) {
		return 0
	}
	visited := NewVisitedSet()
	visited.Mark(initial.Fingerprint())

	type queued struct {
		state board.GameState
		depth int
	}
	queue := []queued{{state: initial, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, succ := range spec.NextStates(cur.state) {
			if succ.State == cur.state {
				continue
			}
			if spec.IsWinningState(succ.State) {
				return cur.depth + 1
			}
			fp := succ.State.Fingerprint()
			if visited.Test(fp) {
				continue
			}
			visited.Mark(fp)
			queue = append(queue, queued{state: succ.State, depth: cur.depth + 1})
		}
	}
	return -1
}

// reconstruct walks the back-edge map from final to initial and returns the
// moves in forward order.
func reconstruct(edges map[uint32]backEdge, initial, final board.GameState) []board.Move {
	var moves []board.Move
	state := final
	for state != initial {
		edge := edges[state.Fingerprint()]
		moves = append(moves, edge.move)
		state = edge.pred
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
