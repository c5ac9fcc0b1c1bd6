// Package metrics holds the record types and CSV writers for self-play
// experiments.
package metrics

import "time"

// AgentConfig describes one search agent taking part in an experiment.
type AgentConfig struct {
	ID    int
	Depth int
}

// GameRecord summarizes a finished self-play game. Agent1 played the
// maximizer, Agent2 the minimizer.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID
	Agent2   int // AgentConfig.ID
	Winner   string
	Moves    int
	Duration time.Duration
}

// MoveRecord captures one searched move within a game.
type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Agent    int // AgentConfig.ID
	Move     string
	Duration time.Duration
}
