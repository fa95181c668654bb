// Package errors provides the structured error type used across custom-lobby.
//
// Errors carry a code, a user-facing message, an optional cause and free-form
// metadata:
//
//	err := errors.InvalidArgumentf("unknown role %q", raw).
//	    WithMeta("input", raw)
//
// Wrapping keeps the code of the wrapped error unless a new one is given:
//
//	if err := store.Put(ctx, key, body); err != nil {
//	    return errors.Wrap(err, "failed to persist catalog response")
//	}
//
//	if len(candidates) == 0 {
//	    return errors.WrapWithCode(empty, errors.CodeFailedPrecondition,
//	        "could not find 10 champions satisfying role targets")
//	}
//
// Typed errors from lower layers (for example the selection package's
// CountMismatchError) stay reachable through the cause chain, so callers can
// still use errors.As on them after a WrapWithCode.
//
// # Layer guidelines
//
// Repositories return NotFound on cache misses and wrap backend failures.
// Clients return Unavailable for transport failures and DataLoss for
// malformed remote payloads. Orchestrators validate inputs (InvalidArgument),
// report unmet constraints (FailedPrecondition) and escalate modeling faults
// (Internal). The cmd layer maps the final code to an exit status.
package errors
