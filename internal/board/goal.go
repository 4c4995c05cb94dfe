package board

// GoalType selects which robot(s) may satisfy the puzzle's goal cell: either
// any robot, or one particular robot index.
type GoalType struct {
	particular bool
	robotIndex int
}

// AnyGoal returns a goal type satisfied by any robot.
func AnyGoal() GoalType {
	return GoalType{}
}

// ParticularGoal returns a goal type satisfied only by the given robot
// index, which must be in [0, RobotCount).
func ParticularGoal(robotIndex int) GoalType {
	if robotIndex < 0 || robotIndex >= RobotCount {
		panic("board: robot index out of range")
	}
	return GoalType{particular: true, robotIndex: robotIndex}
}

// IsAny reports whether this goal type accepts any robot.
func (g GoalType) IsAny() bool {
	return !g.particular
}

// RobotIndex returns the required robot index. Only valid when !IsAny().
func (g GoalType) RobotIndex() int {
	if g.IsAny() {
		panic("board: RobotIndex called on an Any goal type")
	}
	return g.robotIndex
}

// Satisfies reports whether a robot at robotIndex reaching the goal cell
// satisfies this goal type.
func (g GoalType) Satisfies(robotIndex int) bool {
	return g.IsAny() || g.robotIndex == robotIndex
}
