package lol

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// Player is one entrant in the custom game
type Player struct {
	SummonerName string
	Rank         Rank
	Level        int
}

// GetID returns the summoner name, which identifies a player in a lobby
func (p *Player) GetID() string {
	return p.SummonerName
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return "player"
}

// SkillScore is the value teams are balanced on. Account level is used; the
// rank is informational only.
func (p *Player) SkillScore() int {
	return p.Level
}

var _ core.Entity = (*Player)(nil)

// ParsePlayer reads a "summoner name, ranked rank, level" record, for example
// "daisy go bonk, platinum 4, 522".
func ParsePlayer(line string) (*Player, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return nil, errors.InvalidArgumentf("expected `name, rank, level`, got %d field(s)", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", fields[0], vb)

	rank, err := ParseRank(fields[1])
	if err != nil {
		vb.InvalidField("rank", errors.GetMessage(err))
	}

	level, err := strconv.Atoi(fields[2])
	if err != nil {
		vb.InvalidField("level", "must be a whole number")
	} else {
		errors.ValidateMin("level", level, 0, vb)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Player{
		SummonerName: fields[0],
		Rank:         rank,
		Level:        level,
	}, nil
}

// String renders the player as a roster line
func (p *Player) String() string {
	return p.SummonerName + " | LVL " + strconv.Itoa(p.Level) + " | " + p.Rank.String()
}
