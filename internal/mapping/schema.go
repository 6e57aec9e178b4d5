package mapping

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mappers are the mapper definitions in declaration order.
	Mappers []MapperDef `yaml:"mappers"`
}

// MapperDef declares one mapper.
type MapperDef struct {
	// Name identifies the mapper for extends, imports and using.
	Name string `yaml:"name"`

	// Description is free text shown by inspection tools.
	Description string `yaml:"description,omitempty"`

	// Extends names a parent mapper whose rules and hooks are inherited.
	Extends string `yaml:"extends,omitempty"`

	// Imports names mappers whose rules are copied after the inherited ones.
	Imports StringOrArray `yaml:"imports,omitempty"`

	// Hooks maps a hook kind ("before_normalize", ...) to hook names.
	Hooks map[string]StringOrArray `yaml:"hooks,omitempty"`

	// Rules in declaration order.
	Rules []RuleDef `yaml:"rules,omitempty"`
}

// RuleDef declares one rule.
type RuleDef struct {
	// From is the path read on normalize and written on denormalize.
	From string `yaml:"from"`

	// To is the path written on normalize and read on denormalize.
	To string `yaml:"to"`

	// Using names the mapper the value is delegated to.
	Using string `yaml:"using,omitempty"`

	// Default is written when the source value is missing.
	Default OptionalValue `yaml:"default,omitempty"`

	// Filter names the filters run before writing each side.
	Filter FilterSpec `yaml:"filter,omitempty"`
}

// StringOrArray is a list of strings that can be written as a single string.
type StringOrArray []string

// FilterSpec holds the filter chains of both paths of a rule.
// YAML formats supported:
//   - Single name: "to_i" (applies to "to")
//   - List of names: [trim, upcase] (applies to "to")
//   - Both sides: {from: to_s, to: [trim, to_i]}
type FilterSpec struct {
	From StringOrArray
	To   StringOrArray
}

// IsZero reports whether no filter is declared.
func (f FilterSpec) IsZero() bool {
	return len(f.From) == 0 && len(f.To) == 0
}

// OptionalValue distinguishes "no default" from any concrete default,
// including false and 0. A null in YAML counts as not set.
type OptionalValue struct {
	Value any
	Set   bool
}

// Some returns a set OptionalValue.
func Some(v any) OptionalValue {
	return OptionalValue{Value: v, Set: true}
}

// IsZero reports whether no value is set.
func (o OptionalValue) IsZero() bool {
	return !o.Set
}

// Find returns the definition named name, or nil.
func (mf *MappingFile) Find(name string) *MapperDef {
	for i := range mf.Mappers {
		if mf.Mappers[i].Name == name {
			return &mf.Mappers[i]
		}
	}

	return nil
}

// Names returns mapper names in declaration order.
func (mf *MappingFile) Names() []string {
	names := make([]string, 0, len(mf.Mappers))
	for i := range mf.Mappers {
		names = append(names, mf.Mappers[i].Name)
	}

	return names
}

// Dependencies returns the names that must be built before this mapper:
// the parent followed by imports.
func (md *MapperDef) Dependencies() []string {
	var deps []string
	if md.Extends != "" {
		deps = append(deps, md.Extends)
	}

	return append(deps, md.Imports...)
}
