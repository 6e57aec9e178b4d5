package mapper

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Builder accumulates the rules and hooks of a Mapper. A Builder is setup
// state and must not be shared between goroutines. Building never hands out
// the builder's own slices, so it can keep being extended afterwards without
// affecting mappers already built.
type Builder struct {
	name   string
	rules  []*Rule
	hooks  [hookKindTotal][]Hook
	logger *slog.Logger
	errs   []error
}

// NewBuilder starts an empty mapper definition.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Extend starts a definition that inherits parent's rules and hooks. Parent
// rules and hooks run before the ones declared on the returned builder.
// parent must not be nil.
func Extend(name string, parent *Mapper) *Builder {
	b := &Builder{
		name:   name,
		rules:  slices.Clone(parent.rules),
		logger: parent.logger,
	}

	for kind := range b.hooks {
		b.hooks[kind] = slices.Clone(parent.hooks[kind])
	}

	return b
}

// Map declares a rule between two path strings. A malformed path is
// reported by Build.
func (b *Builder) Map(from, to string, opts ...RuleOption) *Builder {
	fromPath, errFrom := ParsePath(from)
	toPath, errTo := ParsePath(to)

	if errFrom != nil || errTo != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper %q: rule %s -> %s: %w", b.name, from, to, errors.Join(errFrom, errTo)))
		return b
	}

	return b.MapPaths(fromPath, toPath, opts...)
}

// MapPaths declares a rule between two parsed paths.
func (b *Builder) MapPaths(from, to *Path, opts ...RuleOption) *Builder {
	if from == nil || to == nil {
		b.errs = append(b.errs, fmt.Errorf("mapper %q: rule with nil path", b.name))
		return b
	}

	b.rules = append(b.rules, NewRule(from, to, opts...))

	return b
}

// AddRule appends an already constructed rule.
func (b *Builder) AddRule(r *Rule) *Builder {
	b.rules = append(b.rules, r)
	return b
}

// Import appends other's rules after the rules declared so far. Hooks are
// not imported.
func (b *Builder) Import(other *Mapper) *Builder {
	b.rules = append(b.rules, other.rules...)
	return b
}

// AddHook appends h to the hook sequence of kind.
func (b *Builder) AddHook(kind HookKind, h Hook) *Builder {
	if kind < 0 || int(kind) >= hookKindTotal {
		b.errs = append(b.errs, fmt.Errorf("mapper %q: unknown hook kind %d", b.name, kind))
		return b
	}

	b.hooks[kind] = append(b.hooks[kind], h)

	return b
}

// BeforeNormalize appends a hook run on the input before normalizing.
func (b *Builder) BeforeNormalize(h Hook) *Builder {
	return b.AddHook(BeforeNormalize, h)
}

// BeforeDenormalize appends a hook run on the input before denormalizing.
func (b *Builder) BeforeDenormalize(h Hook) *Builder {
	return b.AddHook(BeforeDenormalize, h)
}

// AfterNormalize appends a hook run on the output after normalizing.
func (b *Builder) AfterNormalize(h Hook) *Builder {
	return b.AddHook(AfterNormalize, h)
}

// AfterDenormalize appends a hook run on the output after denormalizing.
func (b *Builder) AfterDenormalize(h Hook) *Builder {
	return b.AddHook(AfterDenormalize, h)
}

// WithLogger sets the logger used to report skipped rules at debug level.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Build returns the mapper, or every declaration error joined together.
func (b *Builder) Build() (*Mapper, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	m := &Mapper{
		name:   b.name,
		rules:  slices.Clip(slices.Clone(b.rules)),
		logger: b.logger,
	}

	for kind := range m.hooks {
		m.hooks[kind] = slices.Clip(slices.Clone(b.hooks[kind]))
	}

	if m.logger == nil {
		m.logger = discardLogger
	}

	return m, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Mapper {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}

	return m
}
