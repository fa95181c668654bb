package selection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// ExclusionMode controls which models an exclusion clause rules out after a
// candidate has been found.
type ExclusionMode int

const (
	// ExcludeItemSet forbids every slot ordering of a found set of champions,
	// so no two candidates contain the same champions.
	ExcludeItemSet ExclusionMode = iota
	// ExcludeAssignment forbids only the exact slot tuple; the same champions
	// in a different slot order count as a new candidate.
	ExcludeAssignment
)

func (m ExclusionMode) String() string {
	switch m {
	case ExcludeItemSet:
		return "item-set"
	case ExcludeAssignment:
		return "assignment"
	default:
		return fmt.Sprintf("ExclusionMode(%d)", int(m))
	}
}

// gini Solve results
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// SolverConfig configures a Solver
type SolverConfig struct {
	// CheckTimeout bounds a single satisfiability query. Zero means no bound.
	CheckTimeout time.Duration
	Exclusion    ExclusionMode
}

// Validate validates the configuration
func (c *SolverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CheckTimeout < 0 {
		vb.Field("check_timeout", "must not be negative")
	}
	if c.Exclusion != ExcludeItemSet && c.Exclusion != ExcludeAssignment {
		vb.InvalidField("exclusion", c.Exclusion.String())
	}

	return vb.Build()
}

// Solver enumerates selections meeting a ConstraintSpec
type Solver struct {
	checkTimeout time.Duration
	exclusion    ExclusionMode
}

// NewSolver creates a new solver
func NewSolver(cfg *SolverConfig) (*Solver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Solver{
		checkTimeout: cfg.CheckTimeout,
		exclusion:    cfg.Exclusion,
	}, nil
}

// ConstraintSpec is one draw request
type ConstraintSpec struct {
	// Targets is the exact number of slots that must hold a champion of each
	// role. Roles not listed are unconstrained.
	Targets    lol.RoleTargets
	Slots      int
	MaxChoices int
}

// Validate rejects negative counts and empty pools
func (s ConstraintSpec) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("slots", s.Slots, 1, vb)
	errors.ValidateMin("max_choices", s.MaxChoices, 0, vb)
	for _, tag := range s.Targets.Tags() {
		errors.ValidateMin(fmt.Sprintf("targets.%s", tag), s.Targets[tag], 0, vb)
	}

	return vb.Build()
}

// Selection holds one catalog index per slot
type Selection []int

// CandidateSet is the result of a Solve
type CandidateSet struct {
	Selections []Selection
	// Exhausted is set when the solver proved no further candidate exists.
	Exhausted bool
}

// Len returns the number of candidates
func (c *CandidateSet) Len() int {
	return len(c.Selections)
}

// IDs resolves every selection to champion IDs
func (c *CandidateSet) IDs(catalog *lol.Catalog) [][]string {
	out := make([][]string, len(c.Selections))
	for i, sel := range c.Selections {
		out[i] = catalog.IDs(sel)
	}
	return out
}

// Solve enumerates up to spec.MaxChoices selections from index. An
// infeasible spec yields an empty CandidateSet and a nil error.
func (s *Solver) Solve(ctx context.Context, index *CategoryIndex, spec ConstraintSpec) (*CandidateSet, error) {
	if index == nil {
		return nil, errors.InvalidArgument("index is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if spec.MaxChoices == 0 {
		return &CandidateSet{}, nil
	}
	if reason := infeasible(index, spec); reason != "" {
		slog.Debug("constraint spec is infeasible",
			"reason", reason,
			"slots", spec.Slots,
			"catalog_size", index.Len(),
			"targets", spec.Targets.String())
		return &CandidateSet{Exhausted: true}, nil
	}

	m := buildModel(index, spec)
	result := &CandidateSet{}
	for len(result.Selections) < spec.MaxChoices {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err)
		}

		switch s.check(m.g) {
		case satisfiable:
		case unsatisfiable:
			result.Exhausted = true
			slog.Debug("selection enumeration exhausted", "candidates", len(result.Selections))
			return result, nil
		default:
			slog.Warn("selection query timed out",
				"timeout", s.checkTimeout,
				"candidates", len(result.Selections))
			return result, nil
		}

		sel := m.selection()
		result.Selections = append(result.Selections, sel)
		m.exclude(sel, s.exclusion)
	}

	return result, nil
}

func (s *Solver) check(g *gini.Gini) int {
	if s.checkTimeout <= 0 {
		return g.Solve()
	}
	return g.GoSolve().Try(s.checkTimeout)
}

// infeasible reports why spec cannot be met without consulting the solver,
// or "" when a search is needed.
func infeasible(index *CategoryIndex, spec ConstraintSpec) string {
	if spec.Slots > index.Len() {
		return "more slots than champions"
	}
	for _, tag := range spec.Targets.Tags() {
		want := spec.Targets[tag]
		if want > spec.Slots {
			return fmt.Sprintf("%s target exceeds slots", tag)
		}
		if want > len(index.Items(tag)) {
			return fmt.Sprintf("not enough %s champions", tag)
		}
	}
	return ""
}

type model struct {
	g *gini.Gini
	// slots[s][i] holds when slot s holds catalog index i
	slots [][]z.Lit
	// used[i] holds when catalog index i fills any slot
	used []z.Lit
}

func buildModel(index *CategoryIndex, spec ConstraintSpec) *model {
	numSlots, numItems := spec.Slots, index.Len()
	c := logic.NewC()

	slots := make([][]z.Lit, numSlots)
	for s := range slots {
		slots[s] = make([]z.Lit, numItems)
		for i := range slots[s] {
			slots[s][i] = c.Lit()
		}
	}

	var clauses [][]z.Lit

	// every slot holds exactly one champion
	for s := range slots {
		clauses = append(clauses, slots[s])
		clauses = append(clauses, atMostOne(c, slots[s])...)
	}

	// every champion fills at most one slot
	used := make([]z.Lit, numItems)
	for i := 0; i < numItems; i++ {
		column := make([]z.Lit, numSlots)
		for s := range slots {
			column[s] = slots[s][i]
		}
		clauses = append(clauses, pairwiseAtMostOne(column)...)
		used[i] = c.Ors(column...)
	}

	// every constrained role fills exactly its target number of slots
	var units []z.Lit
	for _, tag := range spec.Targets.Tags() {
		want := spec.Targets[tag]
		members := index.Items(tag)
		if len(members) == 0 {
			// infeasible() already rejected want > 0
			continue
		}

		holds := make([]z.Lit, numSlots)
		for s := range slots {
			lits := make([]z.Lit, len(members))
			for k, i := range members {
				lits[k] = slots[s][i]
			}
			holds[s] = c.Ors(lits...)
		}

		card := c.CardSort(holds)
		units = append(units, card.Leq(want), card.Geq(want))
	}

	g := gini.New()
	c.ToCnf(g)
	for _, cl := range clauses {
		addClause(g, cl...)
	}
	for _, u := range units {
		addClause(g, u)
	}

	return &model{g: g, slots: slots, used: used}
}

func (m *model) selection() Selection {
	sel := make(Selection, len(m.slots))
	for s, row := range m.slots {
		for i, lit := range row {
			if m.g.Value(lit) {
				sel[s] = i
				break
			}
		}
	}
	return sel
}

func (m *model) exclude(sel Selection, mode ExclusionMode) {
	clause := make([]z.Lit, len(sel))
	for s, i := range sel {
		if mode == ExcludeAssignment {
			clause[s] = m.slots[s][i].Not()
		} else {
			clause[s] = m.used[i].Not()
		}
	}
	addClause(m.g, clause...)
}

func addClause(g *gini.Gini, lits ...z.Lit) {
	for _, l := range lits {
		g.Add(l)
	}
	g.Add(z.LitNull)
}

// atMostOne is the sequential counter encoding: aux[k] holds when one of
// lits[0..k] is true. Linear in len(lits), which matters for catalog-wide rows.
func atMostOne(c *logic.C, lits []z.Lit) [][]z.Lit {
	n := len(lits)
	if n < 2 {
		return nil
	}

	aux := make([]z.Lit, n-1)
	for k := range aux {
		aux[k] = c.Lit()
	}

	clauses := make([][]z.Lit, 0, 3*n)
	clauses = append(clauses, []z.Lit{lits[0].Not(), aux[0]})
	for k := 1; k < n-1; k++ {
		clauses = append(clauses,
			[]z.Lit{lits[k].Not(), aux[k]},
			[]z.Lit{aux[k-1].Not(), aux[k]},
			[]z.Lit{lits[k].Not(), aux[k-1].Not()},
		)
	}
	clauses = append(clauses, []z.Lit{lits[n-1].Not(), aux[n-2].Not()})
	return clauses
}

func pairwiseAtMostOne(lits []z.Lit) [][]z.Lit {
	var clauses [][]z.Lit
	for a := 0; a < len(lits); a++ {
		for b := a + 1; b < len(lits); b++ {
			clauses = append(clauses, []z.Lit{lits[a].Not(), lits[b].Not()})
		}
	}
	return clauses
}
