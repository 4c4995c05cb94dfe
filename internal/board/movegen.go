package board

// Successor pairs a move with the state it produces. When the robot cannot
// move in that direction, State equals the input state (a no-op); callers
// that only want genuine moves filter those out by comparing State to the
// state NextStates was called with.
type Successor struct {
	Move  Move
	State GameState
}

// NextStates returns all RobotCount*4 = 16 successors of state, indexed in
// (robot, direction) order, including no-op entries for directions a robot
// cannot move in.
func (spec *GameSpec) NextStates(state GameState) [RobotCount * 4]Successor {
	var out [RobotCount * 4]Successor
	idx := 0
	for robot := 0; robot < RobotCount; robot++ {
		for _, d := range AllDirections {
			out[idx] = Successor{
				Move:  Move{Robot: robot, Direction: d},
				State: spec.slide(state, robot, d),
			}
			idx++
		}
	}
	return out
}

// slide computes the state produced by moving robot in direction d as far as
// walls and other robots allow.
func (spec *GameSpec) slide(state GameState, robot int, d Direction) GameState {
	p := state.Robots[robot]
	wallSteps := spec.WallStepsFrom(p, d)
	if wallSteps == 0 {
		return state
	}
	steps := wallSteps
	if rs := spec.robotSteps(state, robot, d); rs < steps {
		steps = rs
	}
	if steps == 0 {
		return state
	}
	next := state
	next.Robots[robot] = p.Add(d.Vector().Scale(int8(steps)))
	return next
}

// robotSteps returns the number of steps robot may travel in direction d
// before it would collide with another robot, i.e. BoardSize if no other
// robot is in the way. It rotates both the moving robot and every other
// robot into the "moving up" frame so a single collision routine
// (calcUpSteps) handles all four directions.
func (spec *GameSpec) robotSteps(state GameState, robot int, d Direction) uint8 {
	from := upFrame(d, state.Robots[robot])
	best := uint8(BoardSize)
	for i, p := range state.Robots {
		if i == robot {
			continue
		}
		if s := calcUpSteps(from, upFrame(d, p)); s < best {
			best = s
		}
	}
	return best
}

// calcUpSteps returns how many cells a robot at from could travel upward
// (decreasing row) before stopping one cell short of a robot at to. If to is
// not directly ahead of from in the same column, collision is impossible and
// BoardSize (no constraint) is returned.
func calcUpSteps(from, to Point) uint8 {
	if from.C != to.C || to.R >= from.R {
		return BoardSize
	}
	return uint8(from.R - to.R - 1)
}

// PrevStates enumerates every state from which a single legal move could
// land in state: for each robot and each direction that robot could have
// arrived from, every intermediate cell back along that line until a wall
// or another robot would itself have stopped the robot there.
func (spec *GameSpec) PrevStates(state GameState) []GameState {
	var out []GameState
	for robot := 0; robot < RobotCount; robot++ {
		for _, d := range AllDirections {
			out = spec.prevStatesFor(state, robot, d, out)
		}
	}
	return out
}

// prevStatesFor appends the predecessors obtained by assuming robot's last
// move was in direction d (so the robot stopped because of an obstruction on
// its d side), stepping it backwards (direction d.Reverse()) as far as walls
// and other robots allow.
func (spec *GameSpec) prevStatesFor(state GameState, robot int, d Direction, out []GameState) []GameState {
	p := state.Robots[robot]
	stoppedByWall := spec.HasWall(p, d)
	stoppedByRobot := state.HasOtherRobotAt(robot, p.Add(d.Vector()))
	if !stoppedByWall && !stoppedByRobot {
		return out
	}

	bd := d.Reverse()
	pos := p
	for !spec.HasWall(pos, bd) {
		next := pos.Add(bd.Vector())
		if state.HasOtherRobotAt(robot, next) {
			break
		}
		pos = next
		prev := state
		prev.Robots[robot] = pos
		out = append(out, prev)
	}
	return out
}
