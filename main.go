// Command minimax plays tic-tac-toe against an alpha-beta search engine in
// a stdin REPL, or runs self-play depth experiments.
package main

import (
	"flag"

	"minimax/engine"
	"minimax/experiments"
)

func main() {
	size := flag.Int("size", 3, "width of the square board")
	depth := flag.Int("depth", 9, "search depth in plies")
	selfplay := flag.Bool("selfplay", false, "run self-play depth experiments instead of the REPL")
	flag.Parse()

	if *selfplay {
		experiments.RunDepthExperiment(*size)
		return
	}
	engine.PlayTicTacToeDepth(*size, *depth)
}
