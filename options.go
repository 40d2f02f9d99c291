package forthlet

type Option interface{ apply(ev *Evaluator) }

// Options combines options into one, skipping nils.
func Options(opts ...Option) Option { return options(opts) }

type options []Option

func (opts options) apply(ev *Evaluator) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
}

// WithLogf enables step tracing through a Printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStackLimit bounds the data stack at limit values; an operation
// that would push past it fails that Process call with
// ErrStackOverflow. Zero means no limit.
func WithStackLimit(limit uint) Option { return stackLimitOption(limit) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ev *Evaluator) { ev.logfn = logfn }

type stackLimitOption uint

func (lim stackLimitOption) apply(ev *Evaluator) { ev.stackLimit = int(lim) }
