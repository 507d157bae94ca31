package nzcore

import (
	"nzcore/internal/logging"
	"nzcore/internal/telemetry"
	"nzcore/internal/validator"
)

// Options collects the optional overrides accepted by Create. With no
// Option applied, Create uses every documented default: derived chain id,
// initial logical time 1, no policy, a discarding logger, and unregistered
// metrics.
type Options struct {
	chainID     string
	initialTime int64
	policy      validator.PolicyEvaluator
	logger      *logging.Logger
	metrics     *telemetry.Metrics
}

// Option configures a Facade at construction time.
type Option func(*Options)

// WithChainID overrides the chain id that would otherwise be derived from
// the identity's public key. Most callers should never set this.
func WithChainID(chainID string) Option {
	return func(o *Options) { o.chainID = chainID }
}

// WithInitialTime sets the logical clock's starting value. Defaults to 1.
func WithInitialTime(t int64) Option {
	return func(o *Options) { o.initialTime = t }
}

// WithPolicy installs a policy evaluator consulted by VerifyDocument's
// policy layer. Absent this option, policy always passes.
func WithPolicy(p validator.PolicyEvaluator) Option {
	return func(o *Options) { o.policy = p }
}

// WithLogger installs a logger for facade lifecycle events. Defaults to a
// discarding logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics installs a metrics sink. Defaults to unregistered (no-op)
// metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func resolveOptions(opts []Option) Options {
	o := Options{initialTime: 1}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = logging.Noop()
	}
	if o.metrics == nil {
		o.metrics = telemetry.New(nil)
	}
	return o
}
