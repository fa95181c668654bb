package teams_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/teams"
	"github.com/KirkDiggler/custom-lobby/internal/testutils/builders"
)

// scriptedRoller replays rolls, then returns the die size (no swap) forever
type scriptedRoller struct {
	rolls []int
	calls int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.calls++
	if len(r.rolls) == 0 {
		return size, nil
	}
	next := r.rolls[0]
	r.rolls = r.rolls[1:]
	return next, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *scriptedRoller
	orch   teams.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &scriptedRoller{}

	orch, err := teams.NewOrchestrator(&teams.Config{Roller: s.roller})
	s.Require().NoError(err)
	s.orch = orch
}

func names(team *lol.Team) []string {
	out := make([]string, len(team.Players))
	for i, p := range team.Players {
		out[i] = p.SummonerName
	}
	return out
}

func (s *OrchestratorTestSuite) TestFormTeams_IdentityShuffleSplitsInOrder() {
	players := builders.Roster(10, 20, 30, 40, 50)

	out, err := s.orch.FormTeams(s.ctx, &teams.FormTeamsInput{Players: players, Fairness: 1})
	s.Require().NoError(err)

	// first floor(5/2) go to team 2, the odd player stays on team 1
	s.Equal([]string{"p1", "p2"}, names(out.TeamSet.Team2))
	s.Equal([]string{"p3", "p4", "p5"}, names(out.TeamSet.Team1))
	s.Equal(120, out.TeamSet.Team1.SumSkill)
	s.Equal(30, out.TeamSet.Team2.SumSkill)
	s.Equal(90, out.TeamSet.SkillDiff)
	s.Equal(1, out.BestTrial)
	s.Equal(4, s.roller.calls)
}

func (s *OrchestratorTestSuite) TestFormTeams_KeepsBestTrial() {
	players := builders.Roster(1, 2, 3, 4)

	// trial 1: identity, {p1,p2} vs {p3,p4}, diff 4
	// trial 2: d4=1 swaps p1<->p4, then identity: [p4,p2,p3,p1], {p4,p2} vs {p3,p1}, diff 2
	// trial 3: identity again, diff 4
	s.roller.rolls = []int{4, 3, 2, 1, 3, 2, 4, 3, 2}

	out, err := s.orch.FormTeams(s.ctx, &teams.FormTeamsInput{Players: players, Fairness: 3})
	s.Require().NoError(err)

	s.Equal(2, out.BestTrial)
	s.Equal(2, out.TeamSet.SkillDiff)
	s.Equal([]string{"p4", "p2"}, names(out.TeamSet.Team2))
	s.Equal([]string{"p3", "p1"}, names(out.TeamSet.Team1))

	// input order untouched
	s.Equal("p1", players[0].SummonerName)
}

func (s *OrchestratorTestSuite) TestFormTeams_FirstTrialWinsTies() {
	players := builders.Roster(5, 5)

	out, err := s.orch.FormTeams(s.ctx, &teams.FormTeamsInput{Players: players, Fairness: 5})
	s.Require().NoError(err)
	s.Equal(1, out.BestTrial)
	s.Equal(0, out.TeamSet.SkillDiff)
}

func (s *OrchestratorTestSuite) TestFormTeams_EveryPlayerPlacedOnce() {
	orch, err := teams.NewOrchestrator(&teams.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)

	players := builders.Roster(100, 250, 30, 512, 77, 8, 400, 222, 90)
	out, err := orch.FormTeams(s.ctx, &teams.FormTeamsInput{Players: players, Fairness: 50})
	s.Require().NoError(err)

	s.Len(out.TeamSet.Team1.Players, 5)
	s.Len(out.TeamSet.Team2.Players, 4)
	s.ElementsMatch(players, append(append([]*lol.Player{}, out.TeamSet.Team1.Players...), out.TeamSet.Team2.Players...))

	diff := out.TeamSet.Team1.SumSkill - out.TeamSet.Team2.SumSkill
	if diff < 0 {
		diff = -diff
	}
	s.Equal(diff, out.TeamSet.SkillDiff)
}

func (s *OrchestratorTestSuite) TestFormTeams_InvalidInput() {
	testCases := []struct {
		name  string
		input *teams.FormTeamsInput
	}{
		{name: "nil input", input: nil},
		{name: "no players", input: &teams.FormTeamsInput{Fairness: 1}},
		{name: "one player", input: &teams.FormTeamsInput{Players: builders.Roster(1), Fairness: 1}},
		{name: "zero fairness", input: &teams.FormTeamsInput{Players: builders.Roster(1, 2), Fairness: 0}},
		{name: "nil player", input: &teams.FormTeamsInput{Players: []*lol.Player{nil, nil}, Fairness: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.FormTeams(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestFormTeams_Canceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.orch.FormTeams(ctx, &teams.FormTeamsInput{Players: builders.Roster(1, 2), Fairness: 3})
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingRoller() {
	_, err := teams.NewOrchestrator(&teams.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
