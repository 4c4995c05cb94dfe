package engine

import "github.com/amylase/ricochet-robots/internal/board"

// Maximizer runs the reverse breadth-first search that, given only a board,
// finds a starting state whose shortest solution is maximally long: a
// hardest-puzzle generator. Where Solver searches forward from a fixed
// root, Maximizer searches backward from the entire set of winning states,
// so its BFS layers enumerate states by their distance to a win.
type Maximizer struct{}

// NewMaximizer returns a ready-to-use reverse solver.
func NewMaximizer() *Maximizer {
	return &Maximizer{}
}

// Maximize returns a state of maximum BFS distance from spec's winning
// states, biased towards "open" starting positions (see
// GameSpec.IsAcceptableFinalState): the BFS layers states by distance to a
// winning state, so the last acceptable state popped is among the globally
// hardest. If no popped state was acceptable, the last state popped is
// returned instead.
func (m *Maximizer) Maximize(spec *board.GameSpec) board.GameState {
	visited := NewVisitedSet()
	var queue []board.GameState

	forEachWinningState(spec, func(ws board.GameState) {
		if anyEquivalentVisited(spec, visited, ws) {
			return
		}
		visited.Mark(ws.Fingerprint())
		queue = append(queue, ws)
	})

	var result board.GameState
	haveResult := false
	var last board.GameState

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		last = cur

		if spec.IsAcceptableFinalState(cur) {
			result = cur
			haveResult = true
		}

		for _, prev := range spec.PrevStates(cur) {
			if anyEquivalentVisited(spec, visited, prev) {
				continue
			}
			visited.Mark(prev.Fingerprint())
			queue = append(queue, prev)
		}
	}

	if haveResult {
		return result
	}
	return last
}

// equivalentStates returns the equivalence class spec's goal type implies
// for state: every permutation of the interchangeable non-target robots.
func equivalentStates(spec *board.GameSpec, state board.GameState) []board.GameState {
	if spec.GoalType().IsAny() {
		return board.EquivalentStatesAny(state)
	}
	return board.EquivalentStatesParticular(state, spec.GoalType().RobotIndex())
}

// anyEquivalentVisited reports whether any state in state's equivalence
// class has already been marked visited. Only the concrete state passed to
// Mark is ever inserted; checking the whole class before inserting is what
// keeps a single representative per equivalence class in the visited set.
func anyEquivalentVisited(spec *board.GameSpec, visited *VisitedSet, state board.GameState) bool {
	for _, eq := range equivalentStates(spec, state) {
		if visited.Test(eq.Fingerprint()) {
			return true
		}
	}
	return false
}

// forEachWinningState calls visit once for every state in which the goal
// condition is satisfied: the goal-satisfying robot sits on spec.Goal() and
// every other robot occupies a distinct cell reachable from the goal by an
// unobstructed flood fill through the wall graph. For GoalType Any, every
// choice of goal-satisfying robot is enumerated.
func forEachWinningState(spec *board.GameSpec, visit func(board.GameState)) {
	if spec.GoalType().IsAny() {
		for robot := 0; robot < board.RobotCount; robot++ {
			winningStatesFor(spec, robot, visit)
		}
		return
	}
	winningStatesFor(spec, spec.GoalType().RobotIndex(), visit)
}

// winningStatesFor enumerates winning states with goalRobot fixed at
// spec.Goal(), assigning every permutation of RobotCount-1 cells drawn from
// the flood-fill-reachable region to the remaining robots.
func winningStatesFor(spec *board.GameSpec, goalRobot int, visit func(board.GameState)) {
	cells := reachableCells(spec)

	chosen := make([]board.Point, 0, board.RobotCount-1)
	used := make([]bool, len(cells))

	var recurse func()
	recurse = func() {
		if len(chosen) == board.RobotCount-1 {
			var robots [board.RobotCount]board.Point
			robots[goalRobot] = spec.Goal()
			j := 0
			for i := 0; i < board.RobotCount; i++ {
				if i == goalRobot {
					continue
				}
				robots[i] = chosen[j]
				j++
			}
			visit(board.GameState{Robots: robots})
			return
		}
		for i, p := range cells {
			if used[i] {
				continue
			}
			used[i] = true
			chosen = append(chosen, p)
			recurse()
			chosen = chosen[:len(chosen)-1]
			used[i] = false
		}
	}
	recurse()
}

// reachableCells floods the wall grid outward from spec.Goal(), moving from
// one field-cell node to the next only through an edge node between them
// that is not a wall, and returns every field cell other than the goal
// whose wall-grid node was reached. The corner nodes where wall segments
// meet are never entered, so a region closed off by walls is not escaped
// diagonally. A robot could stop on any such cell without requiring a
// stopping wall of its own, the same way the forward rule lets a robot
// slide freely through open space.
func reachableCells(spec *board.GameSpec) []board.Point {
	start := spec.Goal().WallCell()
	visited := map[board.Point]bool{start: true}
	queue := []board.Point{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.AllDirections {
			edge := cur.Add(d.Vector())
			if !edge.InWallGrid() || spec.WallAt(edge) {
				continue
			}
			next := edge.Add(d.Vector())
			if !next.InWallGrid() || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	var cells []board.Point
	for r := int8(0); r < board.BoardSize; r++ {
		for c := int8(0); c < board.BoardSize; c++ {
			field := board.Point{R: r, C: c}
			if field == spec.Goal() {
				continue
			}
			if visited[field.WallCell()] {
				cells = append(cells, field)
			}
		}
	}
	return cells
}
