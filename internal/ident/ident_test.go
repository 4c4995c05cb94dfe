package ident

import (
	"testing"

	"github.com/amylase/ricochet-robots/internal/board"
	"github.com/amylase/ricochet-robots/internal/engine"
)

func mustState(t *testing.T, robots [board.RobotCount]board.Point) board.GameState {
	t.Helper()
	s, err := board.NewGameState(robots)
	if err != nil {
		t.Fatalf("NewGameState(%v): %v", robots, err)
	}
	return s
}

// sameWalls compares two specs wall by wall, over every field cell and
// direction.
func sameWalls(a, b *board.GameSpec) bool {
	for r := int8(0); r < board.BoardSize; r++ {
		for c := int8(0); c < board.BoardSize; c++ {
			p := board.Point{R: r, C: c}
			for _, d := range board.AllDirections {
				if a.HasWall(p, d) != b.HasWall(p, d) {
					return false
				}
			}
		}
	}
	return true
}

func TestRoundTripParticularGoal(t *testing.T) {
	walls := board.NewWallGrid()
	walls.SetWallBetween(board.Point{R: 3, C: 7}, board.Right)
	walls.SetWallBetween(board.Point{R: 3, C: 7}, board.Down)
	walls.SetWallBetween(board.Point{R: 12, C: 1}, board.Up)
	spec := board.NewGameSpec(walls, board.Point{R: 3, C: 7}, board.ParticularGoal(2))
	state := mustState(t, [board.RobotCount]board.Point{{0, 0}, {5, 9}, {14, 2}, {8, 8}})

	gotSpec, gotState, err := Load(Dump(spec, state))
	if err != nil {
		t.Fatalf("Load(Dump(...)): %v", err)
	}
	if !sameWalls(spec, gotSpec) {
		t.Error("walls changed across a round trip")
	}
	if gotSpec.Goal() != spec.Goal() {
		t.Errorf("goal = %v, want %v", gotSpec.Goal(), spec.Goal())
	}
	if gotSpec.GoalType() != spec.GoalType() {
		t.Errorf("goal type = %v, want %v", gotSpec.GoalType(), spec.GoalType())
	}
	if gotState != state {
		t.Errorf("state = %v, want %v", gotState, state)
	}
}

func TestRoundTripAnyGoal(t *testing.T) {
	spec := board.NewGameSpec(board.NewWallGrid(), board.Point{R: 15, C: 15}, board.AnyGoal())
	state := mustState(t, [board.RobotCount]board.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})

	gotSpec, gotState, err := Load(Dump(spec, state))
	if err != nil {
		t.Fatalf("Load(Dump(...)): %v", err)
	}
	if !gotSpec.GoalType().IsAny() {
		t.Error("goal type is not Any after round trip")
	}
	if gotSpec.Goal() != spec.Goal() {
		t.Errorf("goal = %v, want %v", gotSpec.Goal(), spec.Goal())
	}
	if gotState != state {
		t.Errorf("state = %v, want %v", gotState, state)
	}
}

// TestLoadThenSolve runs the solver on a decoded identifier: robot 0 one
// straight slide left of the goal on an otherwise empty board.
func TestLoadThenSolve(t *testing.T) {
	spec := board.NewGameSpec(board.NewWallGrid(), board.Point{R: 0, C: 15}, board.ParticularGoal(0))
	state := mustState(t, [board.RobotCount]board.Point{{0, 0}, {9, 9}, {10, 10}, {11, 11}})

	gotSpec, gotState, err := Load(Dump(spec, state))
	if err != nil {
		t.Fatalf("Load(Dump(...)): %v", err)
	}
	moves := engine.NewSolver().Solve(gotSpec, gotState)
	if len(moves) != 1 || moves[0] != (board.Move{Robot: 0, Direction: board.Right}) {
		t.Errorf("Solve = %v, want [Move(0, Right)]", moves)
	}
}

func TestDumpLength(t *testing.T) {
	spec := board.NewGameSpec(board.NewWallGrid(), board.Point{R: 0, C: 0}, board.ParticularGoal(0))
	state := mustState(t, [board.RobotCount]board.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	id := Dump(spec, state)
	if len(id) != idLength/3*2 {
		t.Errorf("len(Dump(...)) = %d, want %d", len(id), idLength/3*2)
	}
}

func TestLoadRejectsMalformedIDs(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"odd length", "abc"},
		{"too short", "ab"},
		{"invalid character", string(make([]byte, 200))},
	}
	for _, tc := range cases {
		if _, _, err := Load(tc.id); err == nil {
			t.Errorf("Load(%s) succeeded, want error", tc.name)
		}
	}
}

func TestLoadRejectsOverlappingRobots(t *testing.T) {
	spec := board.NewGameSpec(board.NewWallGrid(), board.Point{R: 0, C: 0}, board.ParticularGoal(0))
	state := mustState(t, [board.RobotCount]board.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	id := []byte(Dump(spec, state))
	// The robot block is the eight nibbles starting at robotIDStart, just
	// before the goal selector; rewrite robot 1's cell to robot 0's by
	// duplicating its nibble pair through a decode/re-encode of the id.
	nibbles, err := toNibbles(string(id))
	if err != nil {
		t.Fatal(err)
	}
	nibbles[robotIDStart+2] = nibbles[robotIDStart]
	nibbles[robotIDStart+3] = nibbles[robotIDStart+1]
	if _, _, err := Load(fromNibbles(nibbles)); err == nil {
		t.Error("Load accepted overlapping robots, want error")
	}
}

func TestLoadRejectsOutOfRangeGoalKind(t *testing.T) {
	spec := board.NewGameSpec(board.NewWallGrid(), board.Point{R: 0, C: 0}, board.ParticularGoal(0))
	state := mustState(t, [board.RobotCount]board.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	nibbles, err := toNibbles(Dump(spec, state))
	if err != nil {
		t.Fatal(err)
	}
	nibbles[goalIDStart] = 15
	if _, _, err := Load(fromNibbles(nibbles)); err == nil {
		t.Error("Load accepted an out-of-range goal kind, want error")
	}
}

func TestCharIndexRoundTrip(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		idx, err := charToIndex(alphabet[i])
		if err != nil {
			t.Fatalf("charToIndex(%q): %v", alphabet[i], err)
		}
		if int(idx) != i {
			t.Errorf("charToIndex(%q) = %d, want %d", alphabet[i], idx, i)
		}
	}
}
