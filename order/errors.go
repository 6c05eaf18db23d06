package order

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Order.
var ErrNilGraph = errors.New("order: graph is nil")
