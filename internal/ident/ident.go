// Package ident implements the textual board identifier that clients use to
// exchange a full puzzle (walls, goals, robots) as a single string. The
// identifier is a base64-style encoding of a nibble stream: 256 nibbles of
// per-cell wall bitmasks, then the normal goal coordinate table, the wild
// goal coordinate, the robot positions, and finally the nibble pair
// selecting which goal is active.
package ident

import (
	"fmt"
	"strings"

	"github.com/amylase/ricochet-robots/internal/board"
)

// Nibble-stream layout. Each position is two nibbles stored in (c, r) order.
const (
	positionLength = 2

	baseIDStart        = 0
	baseIDLength       = board.BoardSize * board.BoardSize
	normalGoalIDStart  = baseIDStart + baseIDLength
	normalGoalIDLength = board.RobotCount * 4 * positionLength
	wildGoalIDStart    = normalGoalIDStart + normalGoalIDLength
	wildGoalIDLength   = positionLength
	robotIDStart       = wildGoalIDStart + wildGoalIDLength
	robotIDLength      = board.RobotCount * positionLength
	goalIDStart        = robotIDStart + robotIDLength
	goalIDLength       = positionLength

	idLength = baseIDLength + normalGoalIDLength + wildGoalIDLength + robotIDLength + goalIDLength
)

// Wall-absence bits of a cell's base nibble, LSB first. A set bit means the
// cell has no wall on that side.
const (
	openUp    = 1
	openRight = 2
	openDown  = 4
	openLeft  = 8
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-"

// Load decodes a board identifier into the puzzle it describes. It returns
// an error when the identifier has the wrong length, contains a character
// outside the alphabet, or places robots illegally.
func Load(id string) (*board.GameSpec, board.GameState, error) {
	nibbles, err := toNibbles(id)
	if err != nil {
		return nil, board.GameState{}, err
	}
	if len(nibbles) != idLength {
		return nil, board.GameState{}, fmt.Errorf("ident: id decodes to %d nibbles, want %d", len(nibbles), idLength)
	}

	base := nibbles[baseIDStart : baseIDStart+baseIDLength]
	normalGoal := nibbles[normalGoalIDStart : normalGoalIDStart+normalGoalIDLength]
	wildGoal := nibbles[wildGoalIDStart : wildGoalIDStart+wildGoalIDLength]
	robot := nibbles[robotIDStart : robotIDStart+robotIDLength]
	goalSel := nibbles[goalIDStart : goalIDStart+goalIDLength]

	// Coordinates are single nibbles, so every decoded point is already
	// inside the 16x16 field; only robot overlap needs checking below.
	var goalType board.GoalType
	var goal board.Point
	if goalSel[1] < board.RobotCount {
		if goalSel[0] >= normalGoalIDLength/positionLength/board.RobotCount {
			return nil, board.GameState{}, fmt.Errorf("ident: goal kind %d out of range", goalSel[0])
		}
		goalType = board.ParticularGoal(int(goalSel[1]))
		goal = readPoint(normalGoal, int(goalSel[0])*board.RobotCount+int(goalSel[1]))
	} else {
		goalType = board.AnyGoal()
		goal = readPoint(wildGoal, 0)
	}

	var robots [board.RobotCount]board.Point
	for i := range robots {
		robots[i] = readPoint(robot, i)
	}
	state, err := board.NewGameState(robots)
	if err != nil {
		return nil, board.GameState{}, fmt.Errorf("ident: %v", err)
	}

	walls := board.NewWallGrid()
	for r := int8(0); r < board.BoardSize; r++ {
		for c := int8(0); c < board.BoardSize; c++ {
			p := board.Point{R: r, C: c}
			bits := base[int(r)*board.BoardSize+int(c)]
			if bits&openUp == 0 {
				walls.SetWallBetween(p, board.Up)
			}
			if bits&openRight == 0 {
				walls.SetWallBetween(p, board.Right)
			}
			if bits&openDown == 0 {
				walls.SetWallBetween(p, board.Down)
			}
			if bits&openLeft == 0 {
				walls.SetWallBetween(p, board.Left)
			}
		}
	}

	return board.NewGameSpec(walls, goal, goalType), state, nil
}

// Dump encodes a puzzle as a board identifier. Goal coordinate slots the
// puzzle's goal type leaves unused are written as zero; Load ignores them.
func Dump(spec *board.GameSpec, state board.GameState) string {
	nibbles := make([]uint8, idLength)

	for r := int8(0); r < board.BoardSize; r++ {
		for c := int8(0); c < board.BoardSize; c++ {
			p := board.Point{R: r, C: c}
			var bits uint8
			if !spec.HasWall(p, board.Up) {
				bits |= openUp
			}
			if !spec.HasWall(p, board.Right) {
				bits |= openRight
			}
			if !spec.HasWall(p, board.Down) {
				bits |= openDown
			}
			if !spec.HasWall(p, board.Left) {
				bits |= openLeft
			}
			nibbles[baseIDStart+int(r)*board.BoardSize+int(c)] = bits
		}
	}

	if spec.GoalType().IsAny() {
		writePoint(nibbles[wildGoalIDStart:], 0, spec.Goal())
		nibbles[goalIDStart+1] = board.RobotCount
	} else {
		k := spec.GoalType().RobotIndex()
		writePoint(nibbles[normalGoalIDStart:], k, spec.Goal())
		nibbles[goalIDStart+1] = uint8(k)
	}

	for i, p := range state.Robots {
		writePoint(nibbles[robotIDStart:], i, p)
	}

	return fromNibbles(nibbles)
}

func readPoint(nibbles []uint8, i int) board.Point {
	ci := i * positionLength
	return board.Point{R: int8(nibbles[ci+1]), C: int8(nibbles[ci])}
}

func writePoint(nibbles []uint8, i int, p board.Point) {
	ci := i * positionLength
	nibbles[ci] = uint8(p.C)
	nibbles[ci+1] = uint8(p.R)
}

// toNibbles expands each base64 character pair into three nibbles.
func toNibbles(id string) ([]uint8, error) {
	if len(id)%2 != 0 {
		return nil, fmt.Errorf("ident: id length %d is odd", len(id))
	}
	nibbles := make([]uint8, 0, len(id)/2*3)
	for i := 0; i < len(id); i += 2 {
		c0, err := charToIndex(id[i])
		if err != nil {
			return nil, err
		}
		c1, err := charToIndex(id[i+1])
		if err != nil {
			return nil, err
		}
		value := uint16(c0)*64 + uint16(c1)
		nibbles = append(nibbles, uint8(value>>8), uint8(value>>4)&15, uint8(value)&15)
	}
	return nibbles, nil
}

// fromNibbles packs each nibble triple into two base64 characters.
func fromNibbles(nibbles []uint8) string {
	var sb strings.Builder
	sb.Grow(len(nibbles) / 3 * 2)
	for i := 0; i < len(nibbles); i += 3 {
		value := uint16(nibbles[i])<<8 | uint16(nibbles[i+1])<<4 | uint16(nibbles[i+2])
		sb.WriteByte(alphabet[value/64])
		sb.WriteByte(alphabet[value%64])
	}
	return sb.String()
}

func charToIndex(ch byte) (uint8, error) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', nil
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 10, nil
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 10 + 26, nil
	case ch == '_':
		return 62, nil
	case ch == '-':
		return 63, nil
	default:
		return 0, fmt.Errorf("ident: invalid character %q", ch)
	}
}
