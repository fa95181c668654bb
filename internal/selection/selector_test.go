package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/selection"
)

func TestPick(t *testing.T) {
	candidates := [][]string{{"A"}, {"B"}, {"C"}}

	roller := &sequenceRoller{results: []int{2}}
	got, err := selection.Pick(roller, candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got)
	assert.Equal(t, []int{3}, roller.sizes)

	got, err = selection.Pick(&sequenceRoller{results: []int{3}}, candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, got)
}

func TestPick_Empty(t *testing.T) {
	_, err := selection.Pick[[]string](&sequenceRoller{}, nil)
	var target *selection.EmptySelectionError
	assert.ErrorAs(t, err, &target)
}

func TestPick_RollerFailures(t *testing.T) {
	candidates := []string{"A", "B"}

	_, err := selection.Pick(&sequenceRoller{err: errRollerBroken}, candidates)
	assert.True(t, errors.IsUnavailable(err))

	_, err = selection.Pick(&sequenceRoller{results: []int{5}}, candidates)
	assert.True(t, errors.IsInternal(err))

	_, err = selection.Pick(nil, candidates)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestShuffle(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	// i=3 rolls d4 -> 1 swaps a<->d, i=2 rolls d3 -> 3 keeps c, i=1 rolls d2 -> 1 swaps
	roller := &sequenceRoller{results: []int{1, 3, 1}}
	require.NoError(t, selection.Shuffle(roller, items))

	assert.Equal(t, []string{"b", "d", "c", "a"}, items)
	assert.Equal(t, []int{4, 3, 2}, roller.sizes)
}

func TestShuffle_ShortInputs(t *testing.T) {
	roller := &sequenceRoller{}
	require.NoError(t, selection.Shuffle(roller, []int{}))
	require.NoError(t, selection.Shuffle(roller, []int{7}))
	assert.Empty(t, roller.sizes)
}
