package layout

import "github.com/sirupsen/logrus"

// options bundles the optional configuration accepted by Layout.
type options struct {
	log *logrus.Logger
}

// LayoutOption configures a single Layout call.
type LayoutOption func(*options)

// WithLogger routes per-stage debug logging to a caller-supplied logger
// instead of the package default (a silent logrus.New()).
func WithLogger(l *logrus.Logger) LayoutOption {
	return func(o *options) { o.log = l }
}

func newOptions(opts []LayoutOption) *options {
	o := &options{log: logrus.New()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
