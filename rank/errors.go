package rank

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Rank.
var ErrNilGraph = errors.New("rank: graph is nil")

// ErrInfeasible indicates the graph has no feasible ranking (a cycle
// survived acyclification, violating the DAG precondition).
var ErrInfeasible = errors.New("rank: no feasible ranking exists")
