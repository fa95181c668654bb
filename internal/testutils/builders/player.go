// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// PlayerBuilder provides a fluent interface for building test players
type PlayerBuilder struct {
	player *lol.Player
}

// NewPlayerBuilder creates a builder for an unranked level 1 player
func NewPlayerBuilder(name string) *PlayerBuilder {
	return &PlayerBuilder{
		player: &lol.Player{
			SummonerName: name,
			Rank:         lol.Rank{Tier: lol.TierUnranked},
			Level:        1,
		},
	}
}

// WithLevel sets the level, which is also the skill score
func (b *PlayerBuilder) WithLevel(level int) *PlayerBuilder {
	b.player.Level = level
	return b
}

// WithRank sets the tier and division
func (b *PlayerBuilder) WithRank(tier lol.Tier, division int) *PlayerBuilder {
	b.player.Rank = lol.Rank{Tier: tier, Division: division}
	return b
}

// Build returns the player
func (b *PlayerBuilder) Build() *lol.Player {
	return b.player
}

// Roster builds one player per level, named p1, p2, ...
func Roster(levels ...int) []*lol.Player {
	players := make([]*lol.Player, len(levels))
	for i, lvl := range levels {
		players[i] = NewPlayerBuilder(fmt.Sprintf("p%d", i+1)).WithLevel(lvl).Build()
	}
	return players
}
