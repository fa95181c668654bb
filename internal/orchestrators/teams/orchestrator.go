// Package teams splits a lobby into two teams of near-equal skill by
// repeated random shuffles.
package teams

//go:generate mockgen -destination=mock/mock_service.go -package=teamsmock github.com/KirkDiggler/custom-lobby/internal/orchestrators/teams Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/selection"
)

// Service defines the team balancing operations
type Service interface {
	FormTeams(ctx context.Context, input *FormTeamsInput) (*FormTeamsOutput, error)
}

// FormTeamsInput contains the lobby and how hard to search
type FormTeamsInput struct {
	Players []*lol.Player
	// Fairness is the number of shuffles tried; more trials give closer teams
	Fairness int
}

// FormTeamsOutput contains the best split found
type FormTeamsOutput struct {
	TeamSet *lol.TeamSet
	// BestTrial is the 1-based trial that produced TeamSet
	BestTrial int
}

// Config holds the dependencies for the teams orchestrator
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
}

// NewOrchestrator creates a new teams orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{roller: cfg.Roller}, nil
}

// FormTeams runs Fairness trials. Each trial shuffles the lobby, puts the
// first half (rounded down) on team 2 and the rest on team 1. The trial with
// the smallest skill difference wins; the earliest wins ties.
func (o *orchestrator) FormTeams(ctx context.Context, input *FormTeamsInput) (*FormTeamsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if len(input.Players) < 2 {
		vb.Fieldf("players", "need at least 2 players, got %d", len(input.Players))
	}
	errors.ValidateMin("fairness", input.Fairness, 1, vb)
	for i, p := range input.Players {
		if p == nil {
			vb.Fieldf("players", "player %d is nil", i)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var (
		best      *lol.TeamSet
		bestTrial int
	)
	for trial := 1; trial <= input.Fairness; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err)
		}

		shuffled := make([]*lol.Player, len(input.Players))
		copy(shuffled, input.Players)
		if err := selection.Shuffle(o.roller, shuffled); err != nil {
			return nil, errors.Wrap(err, "failed to shuffle players")
		}

		half := len(shuffled) / 2
		ts := lol.NewTeamSet(lol.NewTeam(shuffled[half:]), lol.NewTeam(shuffled[:half]))
		slog.Debug("Team trial", "trial", trial, "skill_diff", ts.SkillDiff)

		if best == nil || ts.SkillDiff < best.SkillDiff {
			best = ts
			bestTrial = trial
		}
	}

	slog.Info("Formed teams",
		"players", len(input.Players),
		"trials", input.Fairness,
		"best_trial", bestTrial,
		"skill_diff", best.SkillDiff)

	return &FormTeamsOutput{TeamSet: best, BestTrial: bestTrial}, nil
}
