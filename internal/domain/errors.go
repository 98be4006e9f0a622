package domain

import "errors"

// Error kinds returned by the storage layer. Repositories propagate them
// untouched; the HTTP layer is the only place they collapse into status codes.
var (
	// ErrNotFound means no record matched the given id or slug.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint rejected the write
	// (duplicate slug or email).
	ErrConflict = errors.New("already exists")

	// ErrConsistency means the store returned a state that contradicts an
	// invariant, e.g. two rows for a unique slug. It indicates a storage
	// bug, not a bad request.
	ErrConsistency = errors.New("consistency violation")

	// ErrTransient marks a network or availability failure that a bounded
	// retry of an idempotent operation may recover from.
	ErrTransient = errors.New("transient storage failure")
)
