package acyclic

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Acyclify or Restore.
var ErrNilGraph = errors.New("acyclic: graph is nil")

// ErrCycleRemains indicates the chosen FAS strategy failed to make g
// acyclic; ranking cannot proceed on a cyclic graph.
var ErrCycleRemains = errors.New("acyclic: graph still contains a cycle after FAS reversal")
