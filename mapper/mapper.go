package mapper

import (
	"log/slog"
	"slices"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Mapper is an immutable table of rules and hooks. Use a Builder to create
// one. The zero Mapper has no rules and maps every input to an empty map.
type Mapper struct {
	name   string
	rules  []*Rule
	hooks  [hookKindTotal][]Hook
	logger *slog.Logger
}

// Name returns the name the mapper was built with.
func (m *Mapper) Name() string {
	return m.name
}

// Rules returns the rules in declaration order, inherited rules first.
func (m *Mapper) Rules() []*Rule {
	return slices.Clone(m.rules)
}

// Hooks returns the hooks of the given kind in execution order.
func (m *Mapper) Hooks(kind HookKind) []Hook {
	if kind < 0 || int(kind) >= hookKindTotal {
		return nil
	}

	return slices.Clone(m.hooks[kind])
}

// Normalize maps input by reading each rule's "from" path and writing its
// "to" path.
func (m *Mapper) Normalize(input any, opts ...CallOption) (any, error) {
	return m.Map(Normalize, input, opts...)
}

// Denormalize maps input by reading each rule's "to" path and writing its
// "from" path.
func (m *Mapper) Denormalize(input any, opts ...CallOption) (any, error) {
	return m.Map(Denormalize, input, opts...)
}

// Map runs before hooks, rules and after hooks for dir. The first error
// from a filter, hook or nested mapper aborts the call and is returned as
// is.
func (m *Mapper) Map(dir Direction, input any, opts ...CallOption) (any, error) {
	c := newCall(opts)

	logger := m.logger
	if logger == nil {
		logger = discardLogger
	}

	logger = logger.With(slog.String("mapper", m.name))

	output := map[string]any{}

	acc := input
	for _, hook := range m.hooks[BeforeHook(dir)] {
		next, err := hook(acc, output, c.options)
		if err != nil {
			return nil, err
		}

		acc = next
	}

	for _, rule := range m.rules {
		if err := rule.process(output, acc, dir, c.context, logger); err != nil {
			return nil, err
		}
	}

	var result any = output
	for _, hook := range m.hooks[AfterHook(dir)] {
		next, err := hook(acc, result, c.options)
		if err != nil {
			return nil, err
		}

		result = next
	}

	return result, nil
}
