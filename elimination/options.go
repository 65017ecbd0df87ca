// SPDX-License-Identifier: MIT

package elimination

// Option configures Solve and Decompose via functional arguments.
type Option func(*Options)

// Options holds the per-call settings of an elimination run.
type Options struct {
	// Tracer receives a diagnostic event after every swap, scale and
	// elimination sub-step. Nil disables tracing and snapshot allocation.
	Tracer Tracer
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Tracer: nil}
}

// WithTracer installs a diagnostic sink. A nil tracer is ignored.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithTraceFunc installs fn as the diagnostic sink. A nil fn is ignored.
func WithTraceFunc(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Tracer = TracerFunc(fn)
		}
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
