package mapper

import (
	"context"
	"log/slog"
)

// SubMapper is anything a Rule can delegate a sub-document to. *Mapper
// implements it; hand written adapters may wrap one to observe or alter
// nested calls.
type SubMapper interface {
	Normalize(input any, opts ...CallOption) (any, error)
	Denormalize(input any, opts ...CallOption) (any, error)
}

// Rule copies one value between two paths.
type Rule struct {
	from       *Path
	to         *Path
	delegate   SubMapper
	defaultVal any
	hasDefault bool
}

// RuleOption configures a Rule.
type RuleOption func(*Rule)

// Using delegates the value found by the rule to m. Lists are mapped element
// by element.
func Using(m SubMapper) RuleOption {
	return func(r *Rule) {
		r.delegate = m
	}
}

// Default sets the value written when the source value is missing. A nil
// default is a configured default and writes nil.
func Default(v any) RuleOption {
	return func(r *Rule) {
		r.defaultVal = v
		r.hasDefault = true
	}
}

// WithFilter attaches f to the "to" path, like ToFilter.
func WithFilter(f Filter) RuleOption {
	return ToFilter(f)
}

// ToFilter attaches f to the "to" path. It runs on Normalize.
func ToFilter(f Filter) RuleOption {
	return func(r *Rule) {
		r.to = r.to.WithFilter(f)
	}
}

// FromFilter attaches f to the "from" path. It runs on Denormalize.
func FromFilter(f Filter) RuleOption {
	return func(r *Rule) {
		r.from = r.from.WithFilter(f)
	}
}

// NewRule creates a rule mapping from onto to.
func NewRule(from, to *Path, opts ...RuleOption) *Rule {
	r := &Rule{from: from, to: to}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// From returns the path read on Normalize.
func (r *Rule) From() *Path {
	return r.from
}

// To returns the path written on Normalize.
func (r *Rule) To() *Path {
	return r.to
}

// Delegate returns the sub mapper, or nil.
func (r *Rule) Delegate() SubMapper {
	return r.delegate
}

// DefaultValue returns the configured default and whether there is one.
func (r *Rule) DefaultValue() (any, bool) {
	return r.defaultVal, r.hasDefault
}

// Paths returns the (read, write) paths for a direction.
func (r *Rule) Paths(dir Direction) (*Path, *Path) {
	if dir == Normalize {
		return r.from, r.to
	}

	return r.to, r.from
}

// Process reads the rule's value out of input and writes it into output.
// Input is never modified. Errors returned by filters and delegates are
// passed through unchanged.
func (r *Rule) Process(output map[string]any, input any, dir Direction, ctx any) error {
	return r.process(output, input, dir, ctx, discardLogger)
}

func (r *Rule) process(output map[string]any, input any, dir Direction, ctx any, logger *slog.Logger) error {
	readPath, writePath := r.Paths(dir)

	value, ok := extract(input, readPath.walk)
	if ok && r.delegate != nil {
		var err error

		value, ok, err = r.delegateValue(value, dir, ctx)
		if err != nil {
			return err
		}
	}

	if !ok {
		if !r.hasDefault {
			r.logSkip(logger, dir, "no value")
			return nil
		}

		value = r.defaultVal
	}

	_, res, err := insert(output, writePath.walk, func() (any, error) {
		return writePath.ApplyFilter(value, ctx)
	})
	if err != nil {
		return err
	}

	switch res {
	case occupied:
		r.logSkip(logger, dir, "destination occupied")
	case mismatch:
		r.logSkip(logger, dir, "destination shape mismatch")
	}

	return nil
}

func (r *Rule) delegateValue(value any, dir Direction, ctx any) (any, bool, error) {
	if isNil(value) {
		return nil, false, nil
	}

	call := r.delegate.Normalize
	if dir == Denormalize {
		call = r.delegate.Denormalize
	}

	items, isList := AsList(value)
	if !isList {
		out, err := call(value, WithContext(ctx))
		if err != nil {
			return nil, false, err
		}

		return out, true, nil
	}

	out := make([]any, 0, len(items))

	for _, item := range items {
		mapped, err := call(item, WithContext(ctx))
		if err != nil {
			return nil, false, err
		}

		out = append(out, mapped)
	}

	return out, true, nil
}

func (r *Rule) logSkip(logger *slog.Logger, dir Direction, reason string) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	readPath, writePath := r.Paths(dir)
	logger.Debug("rule skipped",
		slog.String("reason", reason),
		slog.String("direction", dir.String()),
		slog.String("read", readPath.String()),
		slog.String("write", writePath.String()),
	)
}
