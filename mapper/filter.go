package mapper

// Filter transforms a value right before it is written to a Path.
//
// A Filter either ignores the call context (FilterFunc) or receives it
// (ContextFilterFunc). The choice is made when the filter is declared. The
// zero Filter is the identity.
type Filter struct {
	plain   func(value any) (any, error)
	withCtx func(value, ctx any) (any, error)
}

// FilterFunc returns a Filter that does not receive the call context.
func FilterFunc(fn func(value any) (any, error)) Filter {
	return Filter{plain: fn}
}

// ContextFilterFunc returns a Filter that receives the call context as its
// second argument.
func ContextFilterFunc(fn func(value, ctx any) (any, error)) Filter {
	return Filter{withCtx: fn}
}

// IsIdentity reports whether the filter leaves values untouched.
func (f Filter) IsIdentity() bool {
	return f.plain == nil && f.withCtx == nil
}

// UsesContext reports whether the filter receives the call context.
func (f Filter) UsesContext() bool {
	return f.withCtx != nil
}

// Apply runs the filter on value.
func (f Filter) Apply(value, ctx any) (any, error) {
	switch {
	case f.withCtx != nil:
		return f.withCtx(value, ctx)
	case f.plain != nil:
		return f.plain(value)
	default:
		return value, nil
	}
}

// Chain returns a Filter running f and then next. Context is handed to
// whichever of the two asks for it.
func (f Filter) Chain(next Filter) Filter {
	if f.IsIdentity() {
		return next
	}

	if next.IsIdentity() {
		return f
	}

	return ContextFilterFunc(func(value, ctx any) (any, error) {
		v, err := f.Apply(value, ctx)
		if err != nil {
			return nil, err
		}

		return next.Apply(v, ctx)
	})
}
