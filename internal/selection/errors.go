package selection

import (
	stderrors "errors"
	"fmt"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// DataError reports a catalog entry that cannot be indexed
type DataError struct {
	Item   string
	Tag    string
	Reason string
}

func (e *DataError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("champion %q: %s %q", e.Item, e.Reason, e.Tag)
	}
	return fmt.Sprintf("champion %q: %s", e.Item, e.Reason)
}

// UnknownItemError reports a candidate naming a champion missing from the catalog
type UnknownItemError struct {
	Candidate int
	Name      string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("candidate %d: champion %q not found in catalog", e.Candidate, e.Name)
}

// CountMismatchError reports a role quota a candidate does not meet exactly
type CountMismatchError struct {
	Candidate int
	Category  lol.Tag
	Expected  int
	Actual    int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("candidate %d: not enough or too many %s: need %d, got %d",
		e.Candidate, e.Category, e.Expected, e.Actual)
}

// DuplicateItemError reports a champion appearing twice in one candidate
type DuplicateItemError struct {
	Candidate int
	Name      string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("candidate %d: duplicate champion %q", e.Candidate, e.Name)
}

// SizeMismatchError reports a candidate with the wrong number of champions
type SizeMismatchError struct {
	Candidate int
	Expected  int
	Actual    int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("candidate %d: expected %d champions, got %d", e.Candidate, e.Expected, e.Actual)
}

// EmptySelectionError is returned by Pick when there is nothing to choose from
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "no candidates to choose from"
}

// IsValidationFailure reports whether err comes from Validate rejecting a candidate.
func IsValidationFailure(err error) bool {
	var (
		unknown *UnknownItemError
		count   *CountMismatchError
		dup     *DuplicateItemError
		size    *SizeMismatchError
	)
	return stderrors.As(err, &unknown) ||
		stderrors.As(err, &count) ||
		stderrors.As(err, &dup) ||
		stderrors.As(err, &size)
}
