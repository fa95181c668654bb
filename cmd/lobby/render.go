package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions"
)

// view renders results for a terminal. Color is dropped when out is not one.
type view struct {
	out io.Writer

	title  lipgloss.Style
	name   lipgloss.Style
	detail lipgloss.Style
	box    lipgloss.Style
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		out:    out,
		title:  r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		name:   r.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true),
		detail: r.NewStyle().Foreground(lipgloss.Color("#A0AEC0")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Padding(0, 1),
	}
}

func (v *view) pool(result *champions.DrawPoolOutput, roles lol.RoleTargets) {
	var b strings.Builder

	b.WriteString(v.title.Render(fmt.Sprintf("Champion pool (patch %s)", result.Version)))
	b.WriteString("\n")
	if len(roles) > 0 {
		b.WriteString(v.detail.Render("Roles: " + roles.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, c := range result.Champions {
		fmt.Fprintf(&b, "%2d. %s %s %s\n",
			i+1,
			v.name.Render(c.DisplayName()),
			c.Title,
			v.detail.Render("["+strings.Join(c.Tags, ", ")+"]"))
	}

	more := ""
	if !result.Exhausted {
		more = " or more"
	}
	fmt.Fprintf(&b, "\n%s\n", v.detail.Render(fmt.Sprintf("Picked from %d%s valid pools in %s",
		result.Candidates, more, result.SolveDuration.Round(time.Millisecond))))

	fmt.Fprint(v.out, b.String())
}

func (v *view) teams(set *lol.TeamSet) {
	left := v.box.Render(v.roster("Team 1", set.Team1))
	right := v.box.Render(v.roster("Team 2", set.Team2))

	fmt.Fprintf(v.out, "\n%s\n%s\n%s\n",
		v.title.Render("Generated Teams"),
		v.detail.Render(fmt.Sprintf("Skill Difference: %d", set.SkillDiff)),
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func (v *view) roster(label string, team *lol.Team) string {
	lines := []string{v.title.Render(label)}
	for _, p := range team.Players {
		lines = append(lines, p.String())
	}
	lines = append(lines, v.detail.Render(fmt.Sprintf("Total level %d", team.SumSkill)))
	return strings.Join(lines, "\n")
}
