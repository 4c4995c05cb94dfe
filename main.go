// Command ricochet-robots solves a small built-in Ricochet Robots puzzle and
// prints its board identifier and shortest move sequence. This entrypoint
// exists only to exercise the solver end to end on a single fixed game
// rather than reimplementing a full CLI.
package main

import (
	"log"

	"github.com/amylase/ricochet-robots/internal/board"
	"github.com/amylase/ricochet-robots/internal/engine"
	"github.com/amylase/ricochet-robots/internal/ident"
)

func main() {
	walls := board.NewWallGrid()
	spec := board.NewGameSpec(walls, board.Point{R: 15, C: 5}, board.ParticularGoal(0))

	initial, err := board.NewGameState([board.RobotCount]board.Point{
		{R: 0, C: 0},
		{R: 15, C: 6},
		{R: 3, C: 9},
		{R: 12, C: 2},
	})
	if err != nil {
		log.Fatalf("[ricochet-robots] invalid starting state: %v", err)
	}
	log.Printf("[ricochet-robots] game id: %s", ident.Dump(spec, initial))

	moves := engine.NewSolver().Solve(spec, initial)
	if moves == nil {
		log.Println("[ricochet-robots] no solution found")
		return
	}

	log.Printf("[ricochet-robots] solved in %d move(s)", len(moves))
	for _, m := range moves {
		log.Printf("[ricochet-robots] > move robot %d %s", m.Robot, m.Direction)
	}
}
