package selection

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// Pick returns one candidate chosen uniformly with roller
func Pick[T any](roller dice.Roller, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, &EmptySelectionError{}
	}
	if roller == nil {
		return zero, errors.InvalidArgument("roller is required")
	}

	roll, err := roller.Roll(len(candidates))
	if err != nil {
		return zero, errors.Wrap(err, "failed to roll for candidate")
	}
	if roll < 1 || roll > len(candidates) {
		return zero, errors.Internalf("roller returned %d for a d%d", roll, len(candidates))
	}

	return candidates[roll-1], nil
}

// Shuffle permutes items in place (Fisher-Yates) using roller
func Shuffle[T any](roller dice.Roller, items []T) error {
	if roller == nil {
		return errors.InvalidArgument("roller is required")
	}

	for i := len(items) - 1; i > 0; i-- {
		roll, err := roller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to roll for shuffle")
		}
		if roll < 1 || roll > i+1 {
			return errors.Internalf("roller returned %d for a d%d", roll, i+1)
		}
		j := roll - 1
		items[i], items[j] = items[j], items[i]
	}

	return nil
}
