package selection

import (
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// Validate re-checks every candidate against the catalog and spec, stopping
// at the first failure. Checks run in order: unknown champion, role counts,
// duplicate champion, pool size.
func Validate(candidates [][]string, catalog *lol.Catalog, spec ConstraintSpec) error {
	for n, ids := range candidates {
		if err := validateCandidate(n, ids, catalog, spec); err != nil {
			return err
		}
	}
	return nil
}

func validateCandidate(n int, ids []string, catalog *lol.Catalog, spec ConstraintSpec) error {
	counts := make(map[lol.Tag]int)
	for _, id := range ids {
		champ, ok := catalog.Lookup(id)
		if !ok {
			return &UnknownItemError{Candidate: n, Name: id}
		}
		tags, err := championTags(champ)
		if err != nil {
			return err
		}
		for _, t := range tags {
			counts[t]++
		}
	}

	for _, tag := range spec.Targets.Tags() {
		if counts[tag] != spec.Targets[tag] {
			return &CountMismatchError{
				Candidate: n,
				Category:  tag,
				Expected:  spec.Targets[tag],
				Actual:    counts[tag],
			}
		}
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return &DuplicateItemError{Candidate: n, Name: id}
		}
		seen[id] = true
	}

	if len(ids) != spec.Slots {
		return &SizeMismatchError{Candidate: n, Expected: spec.Slots, Actual: len(ids)}
	}

	return nil
}
