package allocator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Option configures a Tracker.
type Option func(*trackerOptions)

type trackerOptions struct {
	registerer prometheus.Registerer
	name       string
	logger     logrus.FieldLogger
}

// WithMetrics exports the Tracker's counters to registerer, labelled with
// name. It is ignored if registerer is nil or name is empty.
func WithMetrics(registerer prometheus.Registerer, name string) Option {
	return func(o *trackerOptions) {
		if registerer != nil && name != "" {
			o.registerer = registerer
			o.name = name
		}
	}
}

// WithLogger logs buffer allocations and deallocations at debug level and
// allocation failures at warning level. Element lifetimes are not logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *trackerOptions) {
		o.logger = logger
	}
}

func applyOptions(opts ...Option) *trackerOptions {
	o := &trackerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
