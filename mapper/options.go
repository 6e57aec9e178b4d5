package mapper

// Options are caller supplied settings handed to every hook of a call.
type Options map[string]any

// Hook rewrites the input (before hooks) or the output (after hooks).
//
// Before hooks receive the input accumulated so far and the output map the
// rules are about to populate, and return the input for the next hook.
// After hooks receive the input the rules read and the output accumulated
// so far, and return the next output, which need not be a map.
type Hook func(input, output any, opts Options) (any, error)

// CallOption configures a single Normalize or Denormalize call.
type CallOption func(*call)

type call struct {
	options Options
	context any
}

// WithOptions passes opts to the hooks of the call.
func WithOptions(opts Options) CallOption {
	return func(c *call) {
		c.options = opts
	}
}

// WithContext threads ctx through filters, hooks and nested mappers of the
// call. The same value is shared with every delegate, it is never copied.
func WithContext(ctx any) CallOption {
	return func(c *call) {
		c.context = ctx
	}
}

func newCall(opts []CallOption) call {
	var c call
	for _, opt := range opts {
		opt(&c)
	}

	if c.options == nil {
		c.options = Options{}
	}

	return c
}
