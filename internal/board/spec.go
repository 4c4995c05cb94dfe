package board

// WallGrid is the WallMapSize x WallMapSize boolean matrix describing where
// walls sit. Field cell (r,c) corresponds to wall-grid cell (2r+1, 2c+1);
// walls between cells and along the border live at the even-index rows and
// columns in between.
type WallGrid [WallMapSize][WallMapSize]bool

// NewWallGrid returns a wall grid with only the outer border set.
func NewWallGrid() WallGrid {
	var w WallGrid
	for i := 0; i < WallMapSize; i++ {
		w[0][i] = true
		w[WallMapSize-1][i] = true
		w[i][0] = true
		w[i][WallMapSize-1] = true
	}
	return w
}

// SetWallBetween records a wall between field cell p and its neighbor in
// direction d, at wall-grid position p.WallCell() + d.Vector().
func (w *WallGrid) SetWallBetween(p Point, d Direction) {
	wp := p.WallCell().Add(d.Vector())
	w[wp.R][wp.C] = true
}

// At returns whether a wall sits at the given raw wall-grid coordinate.
func (w WallGrid) At(p Point) bool {
	return w[p.R][p.C]
}

// wallCache[r][c][d] is the number of steps a lone robot starting at field
// cell (r,c) would travel in direction d before a wall stops it, ignoring
// other robots. Values are always in [0, BoardSize).
type wallCache [BoardSize][BoardSize][4]uint8

// GameSpec is the immutable description of one puzzle: the wall grid, the
// goal cell and goal type, and the precomputed wall cache. Once constructed
// a GameSpec is read-only and may be shared across solver invocations
// without synchronization.
type GameSpec struct {
	walls     WallGrid
	goal      Point
	goalType  GoalType
	wallCache wallCache
}

// NewGameSpec builds a GameSpec from a fully specified wall grid (including
// border walls), goal cell, and goal type, and populates the wall cache.
// Construction is deterministic, idempotent, and always terminates (each
// wall-cache entry is bounded by BoardSize steps).
func NewGameSpec(walls WallGrid, goal Point, goalType GoalType) *GameSpec {
	if !goal.InField() {
		panic("board: goal cell out of range")
	}
	spec := &GameSpec{walls: walls, goal: goal, goalType: goalType}
	spec.buildWallCache()
	return spec
}

func (spec *GameSpec) buildWallCache() {
	for r := int8(0); r < BoardSize; r++ {
		for c := int8(0); c < BoardSize; c++ {
			for _, d := range AllDirections {
				spec.wallCache[r][c][d] = spec.slideSteps(Point{R: r, C: c}, d)
			}
		}
	}
}

// slideSteps counts how far a lone robot at p travels in direction d before
// hitting a wall, ignoring other robots.
func (spec *GameSpec) slideSteps(p Point, d Direction) uint8 {
	var steps uint8
	for !spec.HasWall(p, d) {
		p = p.Add(d.Vector())
		steps++
	}
	return steps
}

// HasWall reports whether a wall blocks movement from field cell p in
// direction d.
func (spec *GameSpec) HasWall(p Point, d Direction) bool {
	wp := p.WallCell().Add(d.Vector())
	return spec.walls.At(wp)
}

// WallAt reports whether a wall sits at the given raw wall-grid coordinate.
// Used by the reverse solver's flood fill, which walks the wall grid itself
// rather than stepping field cell by field cell.
func (spec *GameSpec) WallAt(p Point) bool {
	return spec.walls.At(p)
}

// Goal returns the puzzle's target cell.
func (spec *GameSpec) Goal() Point {
	return spec.goal
}

// GoalType returns the puzzle's goal type.
func (spec *GameSpec) GoalType() GoalType {
	return spec.goalType
}

// WallStepsFrom returns the precomputed wall-cache distance for field cell p
// in direction d: how far a lone robot would slide before a wall stops it.
func (spec *GameSpec) WallStepsFrom(p Point, d Direction) uint8 {
	return spec.wallCache[p.R][p.C][d]
}

// IsWinningState reports whether state satisfies the puzzle's goal.
func (spec *GameSpec) IsWinningState(state GameState) bool {
	for i, p := range state.Robots {
		if p == spec.goal && spec.goalType.Satisfies(i) {
			return true
		}
	}
	return false
}

// IsAcceptableFinalState reports whether state is "open" enough to make a
// good puzzle starting position: no robot sits directly adjacent to a wall
// in any of its four neighbor wall cells. Used only by the reverse
// generator to prefer starting arrangements that don't give the solver a
// free wall to lean on immediately.
func (spec *GameSpec) IsAcceptableFinalState(state GameState) bool {
	for _, p := range state.Robots {
		wc := p.WallCell()
		if spec.walls.At(wc.Add(Right.Vector())) {
			return false
		}
		if spec.walls.At(wc.Add(Left.Vector())) {
			return false
		}
		if spec.walls.At(wc.Add(Down.Vector())) {
			return false
		}
		if spec.walls.At(wc.Add(Up.Vector())) {
			return false
		}
	}
	return true
}
