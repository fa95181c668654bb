package lol

// Team is one side of a split
type Team struct {
	Players  []*Player
	SumSkill int
}

// NewTeam totals the skill of the given players.
func NewTeam(players []*Player) *Team {
	sum := 0
	for _, p := range players {
		sum += p.SkillScore()
	}
	return &Team{Players: players, SumSkill: sum}
}

// TeamSet is a candidate split of the lobby into two teams
type TeamSet struct {
	Team1     *Team
	Team2     *Team
	SkillDiff int
}

// NewTeamSet computes the absolute skill difference between the two teams.
func NewTeamSet(team1, team2 *Team) *TeamSet {
	diff := team1.SumSkill - team2.SumSkill
	if diff < 0 {
		diff = -diff
	}
	return &TeamSet{Team1: team1, Team2: team2, SkillDiff: diff}
}
