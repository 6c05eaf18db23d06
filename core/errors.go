package core

import "errors"

// Sentinel errors for core graph operations. Pure data operations never
// return these for missing keys (spec: "errors surface only as absent
// values") — they're reserved for construction-time and invariant checks.
var (
	// ErrNilGraph indicates a nil *Graph receiver was passed where a graph
	// is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidMinLen indicates a non-positive MinLen was supplied for an
	// edge; minlen must be >= 1.
	ErrInvalidMinLen = errors.New("core: edge minlen must be >= 1")

	// ErrNotCompound indicates the compound-only operation SetParent was
	// invoked on a non-compound graph.
	ErrNotCompound = errors.New("core: graph is not compound")
)
