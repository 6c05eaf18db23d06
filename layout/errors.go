package layout

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Layout.
var ErrNilGraph = errors.New("layout: graph is nil")
