package position

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Position.
var ErrNilGraph = errors.New("position: graph is nil")
