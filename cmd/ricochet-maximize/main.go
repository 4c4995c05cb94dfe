// Command ricochet-maximize builds a small built-in board, searches it for
// the hardest starting arrangement of robots, and prints the shortest
// solution to that arrangement. Random board generation is out of scope
// here; the board is fixed so the demonstration is deterministic.
package main

import (
	"log"

	"github.com/amylase/ricochet-robots/internal/board"
	"github.com/amylase/ricochet-robots/internal/engine"
	"github.com/amylase/ricochet-robots/internal/ident"
)

func main() {
	walls := board.NewWallGrid()
	// A small interior wall pocket near the goal, so the goal cell is not
	// trivially reachable from every direction.
	goal := board.Point{R: 8, C: 8}
	walls.SetWallBetween(goal, board.Up)
	walls.SetWallBetween(goal, board.Left)

	spec := board.NewGameSpec(walls, goal, board.AnyGoal())

	hardest := engine.NewMaximizer().Maximize(spec)
	log.Printf("[ricochet-maximize] hardest start: %v", hardest.Robots)
	log.Printf("[ricochet-maximize] game id: %s", ident.Dump(spec, hardest))

	moves := engine.NewSolver().Solve(spec, hardest)
	log.Printf("[ricochet-maximize] shortest solution has %d move(s)", len(moves))
	for _, m := range moves {
		log.Printf("[ricochet-maximize] > move robot %d %s", m.Robot, m.Direction)
	}
}
