package champions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/custom-lobby/internal/clients/datadragon"
	datadragonmock "github.com/KirkDiggler/custom-lobby/internal/clients/datadragon/mock"
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions"
	championsmock "github.com/KirkDiggler/custom-lobby/internal/orchestrators/champions/mock"
	mockclock "github.com/KirkDiggler/custom-lobby/internal/pkg/clock/mock"
	"github.com/KirkDiggler/custom-lobby/internal/pkg/idgen"
	"github.com/KirkDiggler/custom-lobby/internal/selection"
	"github.com/KirkDiggler/custom-lobby/internal/testutils/builders"
	"github.com/KirkDiggler/custom-lobby/internal/testutils/mocks"
)

// fixedRoller always rolls the same face, clamped to the die size
type fixedRoller struct {
	face  int
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.face > size {
		return size, nil
	}
	return r.face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ctx        context.Context
	dataDragon *datadragonmock.MockClient
	clock      *mockclock.MockClock
	roller     *fixedRoller
	catalog    *lol.Catalog
	orch       champions.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.dataDragon = datadragonmock.NewMockClient(s.ctrl)
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.roller = &fixedRoller{face: 1}

	s.catalog = builders.NewCatalogBuilder().
		WithChampion("A", lol.TagTank).
		WithChampion("B", lol.TagTank).
		WithChampion("C", lol.TagMage).
		WithChampion("D", lol.TagMage).
		WithChampion("E", lol.TagMage).
		WithChampion("F", lol.TagSupport).
		Build()

	solver, err := selection.NewSolver(&selection.SolverConfig{})
	s.Require().NoError(err)

	orch, err := champions.NewOrchestrator(&champions.Config{
		DataDragon:  s.dataDragon,
		Solver:      solver,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("draw"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectTiming(elapsed time.Duration) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(start)
	s.clock.EXPECT().Since(start).Return(elapsed)
}

func (s *OrchestratorTestSuite) scenarioInput() *champions.DrawPoolInput {
	return &champions.DrawPoolInput{
		Version:    "latest",
		Roles:      lol.RoleTargets{lol.TagTank: 2, lol.TagMage: 1, lol.TagSupport: 1},
		Slots:      4,
		MaxChoices: 10,
	}
}

func (s *OrchestratorTestSuite) TestDrawPool_Success() {
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", s.catalog)
	s.expectTiming(25 * time.Millisecond)
	s.roller.face = 3

	out, err := s.orch.DrawPool(s.ctx, s.scenarioInput())
	s.Require().NoError(err)

	s.Equal("draw_1", out.DrawID)
	s.Equal("14.1.1", out.Version)
	s.Equal(3, out.Candidates)
	s.True(out.Exhausted)
	s.Equal(25*time.Millisecond, out.SolveDuration)
	s.Equal([]int{3}, s.roller.sizes)

	ids := make([]string, len(out.Champions))
	for i, c := range out.Champions {
		ids[i] = c.ID
	}
	s.Len(ids, 4)
	s.Subset(ids, []string{"A", "B", "F"})
	s.NoError(selection.Validate([][]string{ids}, s.catalog, selection.ConstraintSpec{
		Targets: s.scenarioInput().Roles,
		Slots:   4,
	}))
}

func (s *OrchestratorTestSuite) TestDrawPool_DefaultsToLatest() {
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", s.catalog)
	s.expectTiming(time.Millisecond)

	input := s.scenarioInput()
	input.Version = ""
	_, err := s.orch.DrawPool(s.ctx, input)
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestDrawPool_Infeasible() {
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", s.catalog)
	s.expectTiming(time.Millisecond)

	input := s.scenarioInput()
	input.Roles = lol.RoleTargets{lol.TagTank: 3}

	out, err := s.orch.DrawPool(s.ctx, input)
	s.Nil(out)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "could not find 4 champions satisfying role targets Tank=3")

	var empty *selection.EmptySelectionError
	s.ErrorAs(err, &empty)
	s.Empty(s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestDrawPool_MalformedCatalog() {
	bad := builders.NewCatalogBuilder().WithChampion("A", lol.TagTank).Build()
	bad.Champions = append(bad.Champions, lol.Champion{ID: "Q", Tags: []string{"Jungler"}})
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", bad)

	_, err := s.orch.DrawPool(s.ctx, s.scenarioInput())
	s.True(errors.IsDataLoss(err))

	var dataErr *selection.DataError
	s.ErrorAs(err, &dataErr)
}

func (s *OrchestratorTestSuite) TestDrawPool_VersionLookupFails() {
	s.dataDragon.EXPECT().
		ResolveVersion(s.ctx, &datadragon.ResolveVersionInput{Version: "latest"}).
		Return(nil, errors.Unavailable("ddragon down"))

	_, err := s.orch.DrawPool(s.ctx, s.scenarioInput())
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestDrawPool_CatalogLoadFails() {
	s.dataDragon.EXPECT().
		ResolveVersion(s.ctx, &datadragon.ResolveVersionInput{Version: "2"}).
		Return(&datadragon.ResolveVersionOutput{Version: "13.24.1"}, nil)
	s.dataDragon.EXPECT().
		ListChampions(s.ctx, &datadragon.ListChampionsInput{Version: "13.24.1"}).
		Return(nil, errors.DataLoss("champion.json has no data object"))

	input := s.scenarioInput()
	input.Version = "2"
	_, err := s.orch.DrawPool(s.ctx, input)
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestDrawPool_InvalidInput() {
	testCases := []struct {
		name  string
		input *champions.DrawPoolInput
	}{
		{name: "nil input", input: nil},
		{name: "zero slots", input: &champions.DrawPoolInput{Slots: 0, MaxChoices: 1}},
		{name: "zero max choices", input: &champions.DrawPoolInput{Slots: 4, MaxChoices: 0}},
		{name: "negative role", input: &champions.DrawPoolInput{
			Slots: 4, MaxChoices: 1, Roles: lol.RoleTargets{lol.TagMage: -1},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.DrawPool(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

// withSolver rebuilds the orchestrator around a mocked solver
func (s *OrchestratorTestSuite) withSolver() *championsmock.MockSolver {
	solver := championsmock.NewMockSolver(s.ctrl)
	orch, err := champions.NewOrchestrator(&champions.Config{
		DataDragon:  s.dataDragon,
		Solver:      solver,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("draw"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.orch = orch
	return solver
}

func (s *OrchestratorTestSuite) TestDrawPool_InvalidPoolFromSolver() {
	solver := s.withSolver()
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", s.catalog)
	s.expectTiming(time.Millisecond)

	input := s.scenarioInput()
	solver.EXPECT().
		Solve(s.ctx, gomock.Any(), selection.ConstraintSpec{
			Targets:    input.Roles,
			Slots:      input.Slots,
			MaxChoices: input.MaxChoices,
		}).
		Return(&selection.CandidateSet{
			// A twice: role counts match but the pool repeats a champion
			Selections: []selection.Selection{{0, 0, 2, 5}},
			Exhausted:  true,
		}, nil)

	out, err := s.orch.DrawPool(s.ctx, input)
	s.Nil(out)
	s.True(errors.IsInternal(err))
	s.True(selection.IsValidationFailure(err))

	var dup *selection.DuplicateItemError
	s.Require().ErrorAs(err, &dup)
	s.Equal("A", dup.Name)
	s.Empty(s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestDrawPool_SolverFails() {
	solver := s.withSolver()
	mocks.ExpectCatalogLoad(s.dataDragon, "latest", s.catalog)
	s.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	solver.EXPECT().
		Solve(s.ctx, gomock.Any(), gomock.Any()).
		Return(nil, errors.FromContext(context.Canceled))

	_, err := s.orch.DrawPool(s.ctx, s.scenarioInput())
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := champions.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = champions.NewOrchestrator(&champions.Config{})
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	for _, f := range []string{"DataDragon", "Solver", "Roller", "IDGenerator", "Clock"} {
		s.Contains(fields, f)
	}
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
