package selection_test

import (
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// sixChampionCatalog is A,B tanks; C,D,E mages; F support.
func sixChampionCatalog() *lol.Catalog {
	return lol.NewCatalog("test", []lol.Champion{
		{ID: "A", Tags: []string{"Tank"}},
		{ID: "B", Tags: []string{"Tank"}},
		{ID: "C", Tags: []string{"Mage"}},
		{ID: "D", Tags: []string{"Mage"}},
		{ID: "E", Tags: []string{"Mage"}},
		{ID: "F", Tags: []string{"Support"}},
	})
}

// sequenceRoller returns queued results, then 1 forever.
type sequenceRoller struct {
	results []int
	sizes   []int
	err     error
}

func (r *sequenceRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sizes = append(r.sizes, size)
	if len(r.results) == 0 {
		return 1, nil
	}
	next := r.results[0]
	r.results = r.results[1:]
	return next, nil
}

func (r *sequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var errRollerBroken = errors.Unavailable("roller broken")
