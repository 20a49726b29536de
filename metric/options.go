package metric

// DefaultTakeRoot is the root policy when WithTakeRoot is not given:
// return the raw quadratic form.
const DefaultTakeRoot = false

// Option configures a Mahalanobis at construction.
type Option func(*options)

type options struct {
	takeRoot bool
}

func defaultOptions() options {
	return options{takeRoot: DefaultTakeRoot}
}

// WithTakeRoot selects whether Evaluate returns sqrt of the quadratic form
// (a true metric) or the quadratic form itself.
func WithTakeRoot(takeRoot bool) Option {
	return func(o *options) { o.takeRoot = takeRoot }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
