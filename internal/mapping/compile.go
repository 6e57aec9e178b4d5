package mapping

import (
	"errors"
	"fmt"
	"log/slog"

	"hash-mapper/internal/common"
	"hash-mapper/mapper"
)

var (
	// ErrUnknownMapper is returned when a Set has no mapper of the given name.
	ErrUnknownMapper = errors.New("unknown mapper")
	// ErrInvalidMapping wraps validation errors reported by Compile.
	ErrInvalidMapping = errors.New("invalid mapping")
)

// Set holds the mappers compiled from one mapping file. A Set is read-only
// once compiled and safe for concurrent use.
type Set struct {
	names   []string
	mappers map[string]*mapper.Mapper
	defs    map[string]*MapperDef
}

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

type compileConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger handed to every compiled mapper.
func WithLogger(l *slog.Logger) CompileOption {
	return func(c *compileConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Compile validates mf against reg and builds every mapper it declares.
// Parents and imports are built before the mappers that use them; "using"
// references are resolved when a rule runs.
func Compile(mf *MappingFile, reg *Registry, opts ...CompileOption) (*Set, error) {
	if err := Validate(mf, reg).Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	cfg := compileConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	order, err := buildOrder(len(mf.Mappers), dependencyIndices(mf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	set := &Set{
		names:   mf.Names(),
		mappers: make(map[string]*mapper.Mapper, len(mf.Mappers)),
		defs:    make(map[string]*MapperDef, len(mf.Mappers)),
	}

	for _, i := range order {
		md := &mf.Mappers[i]

		m, err := set.compileMapper(md, reg, cfg.logger)
		if err != nil {
			return nil, err
		}

		set.mappers[md.Name] = m
		set.defs[md.Name] = md
	}

	cfg.logger.Debug("mapping compiled", slog.Int("mappers", len(order)))

	return set, nil
}

// Load reads, validates and compiles the mapping file at path.
func Load(path string, reg *Registry, opts ...CompileOption) (*Set, error) {
	mf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Compile(mf, reg, opts...)
}

func (s *Set) compileMapper(md *MapperDef, reg *Registry, logger *slog.Logger) (*mapper.Mapper, error) {
	var b *mapper.Builder
	if md.Extends != "" {
		b = mapper.Extend(md.Name, s.mappers[md.Extends])
	} else {
		b = mapper.NewBuilder(md.Name)
	}

	b.WithLogger(logger)

	for _, imp := range md.Imports {
		b.Import(s.mappers[imp])
	}

	for _, kindName := range common.SortedKeys(md.Hooks) {
		kind, _ := mapper.ParseHookKind(kindName)

		for _, hookName := range md.Hooks[kindName] {
			b.AddHook(kind, reg.Hook(hookName).Hook)
		}
	}

	for j := range md.Rules {
		rd := &md.Rules[j]

		opts, err := s.ruleOptions(rd, reg)
		if err != nil {
			return nil, fmt.Errorf("mapper %q: rule %s: %w", md.Name, ruleLabel(rd), err)
		}

		b.Map(rd.From, rd.To, opts...)
	}

	return b.Build()
}

func (s *Set) ruleOptions(rd *RuleDef, reg *Registry) ([]mapper.RuleOption, error) {
	var opts []mapper.RuleOption

	toFilter, err := reg.Chain(rd.Filter.To)
	if err != nil {
		return nil, err
	}

	fromFilter, err := reg.Chain(rd.Filter.From)
	if err != nil {
		return nil, err
	}

	if !toFilter.IsIdentity() {
		opts = append(opts, mapper.ToFilter(toFilter))
	}

	if !fromFilter.IsIdentity() {
		opts = append(opts, mapper.FromFilter(fromFilter))
	}

	if rd.Using != "" {
		opts = append(opts, mapper.Using(mapperRef{set: s, name: rd.Using}))
	}

	if rd.Default.Set {
		opts = append(opts, mapper.Default(rd.Default.Value))
	}

	return opts, nil
}

// Names returns mapper names in declaration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the mapper named name.
func (s *Set) Get(name string) (*mapper.Mapper, bool) {
	m, ok := s.mappers[name]
	return m, ok
}

// Mapper returns the mapper named name or an error wrapping ErrUnknownMapper.
func (s *Set) Mapper(name string) (*mapper.Mapper, error) {
	m, ok := s.mappers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapper, name)
	}

	return m, nil
}

// Definition returns the declaration the mapper was compiled from.
func (s *Set) Definition(name string) (*MapperDef, bool) {
	md, ok := s.defs[name]
	return md, ok
}

// mapperRef delegates to a mapper of the set by name, looked up per call.
type mapperRef struct {
	set  *Set
	name string
}

func (r mapperRef) Normalize(input any, opts ...mapper.CallOption) (any, error) {
	m, err := r.set.Mapper(r.name)
	if err != nil {
		return nil, err
	}

	return m.Normalize(input, opts...)
}

func (r mapperRef) Denormalize(input any, opts ...mapper.CallOption) (any, error) {
	m, err := r.set.Mapper(r.name)
	if err != nil {
		return nil, err
	}

	return m.Denormalize(input, opts...)
}

// String returns the name of the referenced mapper.
func (r mapperRef) String() string {
	return r.name
}
