// Package selection draws fixed-size champion pools that meet exact per-role
// quotas.
//
// The pipeline is BuildIndex -> Solver.Solve -> Validate -> Pick:
//
//	index, err := selection.BuildIndex(catalog)
//	candidates, err := solver.Solve(ctx, index, spec)
//	ids := candidates.IDs(catalog)
//	err = selection.Validate(ids, catalog, spec)
//	pool, err := selection.Pick(roller, ids)
//
// Solve encodes the draw as a SAT instance on go-air/gini: one boolean per
// (slot, champion) pair, exactly one champion per slot, each champion in at
// most one slot, and a cardinality network per constrained role. Candidates
// are enumerated by adding an exclusion clause after every model until the
// requested count is reached or the instance becomes unsatisfiable.
//
// An infeasible quota yields an empty CandidateSet, never an error. Errors
// from Validate mean the encoding and the quotas disagree and are fatal.
package selection
