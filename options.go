package densebit

// DefaultMaxBits is the default ceiling on a WordVector's logical size (1000 words).
const DefaultMaxBits = 1000 * WordBits

type options struct {
	maxBits int
	logger  *Logger
	metrics MetricsCollector
}

// Option configures WordVector constructors.
//
// Options are resolved once per constructor. Every vector derived from that
// one (subsets, shifts, bitwise results) shares the resolved configuration.
type Option func(*options)

// WithMaxBits sets the ceiling on the logical size of a vector.
//
// Operations that would grow a vector beyond the ceiling fail with
// ErrCapacityExceeded. Values <= 0 restore DefaultMaxBits.
func WithMaxBits(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxBits
		}
		o.maxBits = n
	}
}

// WithLogger configures the logger used for growth and failure events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the collector notified of growth, capacity and parse events.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

var defaultOptions = &options{
	maxBits: DefaultMaxBits,
	logger:  NoopLogger(),
	metrics: NoopMetricsCollector{},
}

func resolveOptions(opts []Option) *options {
	if len(opts) == 0 {
		return defaultOptions
	}
	o := &options{
		maxBits: DefaultMaxBits,
		logger:  defaultOptions.logger,
		metrics: defaultOptions.metrics,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// rejectCapacity reports op growing a vector to n bits past the ceiling.
func (o *options) rejectCapacity(l *Logger, op string, n int) error {
	l.LogCapacityExceeded(op, n, o.maxBits)
	o.metrics.RecordCapacityExceeded(op, n)
	return errCapacity(n, o.maxBits)
}
