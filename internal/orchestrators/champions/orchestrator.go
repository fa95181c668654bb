// Package champions implements the champion pool draw: load the catalog,
// enumerate pools that meet the role targets, validate them, pick one.
package champions

//go:generate mockgen -destination=mock/mock_solver.go -package=championsmock github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions Solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/custom-lobby/internal/clients/datadragon"
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/pkg/clock"
	"github.com/KirkDiggler/custom-lobby/internal/pkg/idgen"
	"github.com/KirkDiggler/custom-lobby/internal/selection"
)

// Service defines the champion pool operations
type Service interface {
	DrawPool(ctx context.Context, input *DrawPoolInput) (*DrawPoolOutput, error)
}

// DrawPoolInput contains the draw request
type DrawPoolInput struct {
	// Version is "latest", an index into the published versions, or an exact version
	Version    string
	Roles      lol.RoleTargets
	Slots      int
	MaxChoices int
}

// DrawPoolOutput contains the chosen pool
type DrawPoolOutput struct {
	DrawID    string
	Version   string
	Champions []*lol.Champion
	// Candidates is how many valid pools the chosen one was picked from
	Candidates int
	// Exhausted is set when Candidates is every valid pool in the catalog
	Exhausted     bool
	SolveDuration time.Duration
}

// Solver enumerates champion pools meeting a constraint spec
type Solver interface {
	Solve(ctx context.Context, index *selection.CategoryIndex, spec selection.ConstraintSpec) (*selection.CandidateSet, error)
}

var _ Solver = (*selection.Solver)(nil)

// Config holds the dependencies for the champions orchestrator
type Config struct {
	DataDragon  datadragon.Client
	Solver      Solver
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DataDragon == nil {
		vb.RequiredField("DataDragon")
	}
	if c.Solver == nil {
		vb.RequiredField("Solver")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	dataDragon datadragon.Client
	solver     Solver
	roller     dice.Roller
	idGen      idgen.Generator
	clock      clock.Clock
}

// NewOrchestrator creates a new champions orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dataDragon: cfg.DataDragon,
		solver:     cfg.Solver,
		roller:     cfg.Roller,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
	}, nil
}

func (input *DrawPoolInput) validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("slots", input.Slots, 1, vb)
	errors.ValidateMin("max_choices", input.MaxChoices, 1, vb)
	for _, tag := range input.Roles.Tags() {
		if input.Roles[tag] < 0 {
			vb.Fieldf("roles", "%s must not be negative", tag)
		}
	}

	return vb.Build()
}

// DrawPool picks one pool uniformly from up to MaxChoices valid pools
func (o *orchestrator) DrawPool(ctx context.Context, input *DrawPoolInput) (*DrawPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	requested := input.Version
	if requested == "" {
		requested = datadragon.VersionLatest
	}

	versionOut, err := o.dataDragon.ResolveVersion(ctx, &datadragon.ResolveVersionInput{Version: requested})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve game version")
	}

	listOut, err := o.dataDragon.ListChampions(ctx, &datadragon.ListChampionsInput{Version: versionOut.Version})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load champions")
	}
	catalog := listOut.Catalog

	index, err := selection.BuildIndex(catalog)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "champion catalog %s is malformed", catalog.Version)
	}

	spec := selection.ConstraintSpec{
		Targets:    input.Roles,
		Slots:      input.Slots,
		MaxChoices: input.MaxChoices,
	}

	start := o.clock.Now()
	candidates, err := o.solver.Solve(ctx, index, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate champion pools")
	}
	elapsed := o.clock.Since(start)

	slog.Debug("Enumerated champion pools",
		"candidates", candidates.Len(),
		"exhausted", candidates.Exhausted,
		"duration", elapsed)

	if candidates.Len() == 0 {
		return nil, errors.WrapWithCodef(&selection.EmptySelectionError{}, errors.CodeFailedPrecondition,
			"could not find %d champions satisfying role targets %s", input.Slots, input.Roles).
			WithMeta("version", catalog.Version).
			WithMeta("exhausted", candidates.Exhausted)
	}

	ids := candidates.IDs(catalog)
	if err := selection.Validate(ids, catalog, spec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "solver produced an invalid champion pool")
	}

	chosen, err := selection.Pick(o.roller, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick champion pool")
	}

	pool := make([]*lol.Champion, len(chosen))
	for i, id := range chosen {
		champ, _ := catalog.Lookup(id)
		pool[i] = champ
	}

	out := &DrawPoolOutput{
		DrawID:        o.idGen.Generate(),
		Version:       catalog.Version,
		Champions:     pool,
		Candidates:    candidates.Len(),
		Exhausted:     candidates.Exhausted,
		SolveDuration: elapsed,
	}

	slog.Info("Drew champion pool",
		"draw_id", out.DrawID,
		"version", out.Version,
		"roles", input.Roles.String(),
		"candidates", out.Candidates)

	return out, nil
}
