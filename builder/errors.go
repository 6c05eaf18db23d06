package builder

import "errors"

// ErrTooFewVertices indicates a fixture constructor's size parameter (e.g.
// Chain's n) is smaller than the scenario it is meant to express requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")
