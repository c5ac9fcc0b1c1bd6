// Package experiments measures alpha-beta search strength and cost by
// self-play between agents at different depths, recording results as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"minimax/experiments/metrics"
	"minimax/player"
	"minimax/tictactoe"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 2},
	{ID: 2, Depth: 3},
	{ID: 3, Depth: 4},
	{ID: 4, Depth: 6},
	{ID: 5, Depth: 9},
}

// RunDepthExperiment pairs a shallow baseline against each deeper agent on
// a size-by-size board. Search is deterministic, so each matchup is played
// twice, once with each agent as the starting maximizer.
func RunDepthExperiment(size int) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 2}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	runExperiment("depth", size, append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, size int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i, matchUp := range matchUps {
		log.Info().Msgf("running game %d: agent %d (maximizer) vs agent %d (minimizer)",
			i+1, matchUp[0].ID, matchUp[1].ID)
		gameRecord, gameMoves := runGame(i+1, size, matchUp[0], matchUp[1])
		log.Info().Msgf("game %d over, winner %q after %d moves",
			gameRecord.ID, gameRecord.Winner, gameRecord.Moves)
		gameRecords = append(gameRecords, gameRecord)
		moveRecords = append(moveRecords, gameMoves...)
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
}

// runGame plays one self-play game: agent1 is the maximizer, agent2 the
// minimizer.
func runGame(id, size int, agent1, agent2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	g := tictactoe.New(size)
	maximizer := player.NewSearch(agent1.Depth, true)
	minimizer := player.NewSearch(agent2.Depth, false)

	var moveRecords []metrics.MoveRecord
	maximizing := true
	step := 1
	start := time.Now()

	for !g.IsGameComplete() {
		current, agent := minimizer, agent2
		if maximizing {
			current, agent = maximizer, agent1
		}

		moveStart := time.Now()
		m, err := current.NextMove(g)
		if err != nil {
			panic(err) // search players never fail
		}
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:     id,
			Step:     step,
			Agent:    agent.ID,
			Move:     fmt.Sprintf("%v", m),
			Duration: time.Since(moveStart),
		})

		g.Play(m, maximizing)
		maximizing = !maximizing
		step++
	}

	return metrics.GameRecord{
		ID:       id,
		Agent1:   agent1.ID,
		Agent2:   agent2.ID,
		Winner:   g.Winner(),
		Moves:    step - 1,
		Duration: time.Since(start),
	}, moveRecords
}
