package frozenidx

import (
	"log/slog"

	"github.com/hupe1980/frozenidx/attr"
)

// DefaultCardinalityThreshold is the default cutoff between the two storage
// regions: a value shared by more than this many objects gets its own
// pre-sorted entry in the direct lookup map, everything else stays in the
// hash-bucketed arrays. The default bounds the worst-case bucket scan while
// keeping the map small.
const DefaultCardinalityThreshold = 100

// Hasher maps an attribute value to a 64-bit hash. Equal values must produce
// equal hashes; unequal values may collide.
type Hasher func(v attr.Value) uint64

type options struct {
	threshold        int
	hasher           Hasher
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures index construction.
type Option func(*options)

// WithCardinalityThreshold overrides DefaultCardinalityThreshold.
//
// A value with exactly threshold occurrences stays bucketed; threshold+1
// occurrences routes it to the direct lookup map. threshold=0 sends every
// value to the map.
func WithCardinalityThreshold(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithHasher overrides the default value hasher.
//
// The default hashes Value.Key with hash/maphash under a per-index seed,
// which is stable for the index lifetime. A custom hasher must keep the
// "equal values hash equal" contract; it mainly exists so tests can force
// hash collisions.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		threshold:        DefaultCardinalityThreshold,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
