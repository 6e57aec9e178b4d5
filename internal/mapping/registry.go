package mapping

import (
	"errors"
	"fmt"
	"slices"

	"hash-mapper/internal/common"
	"hash-mapper/mapper"
)

var (
	// ErrUnknownFilter is returned when a filter name is not registered.
	ErrUnknownFilter = errors.New("unknown filter")
	// ErrUnknownHook is returned when a hook name is not registered.
	ErrUnknownHook = errors.New("unknown hook")
)

// Registry resolves the filter and hook names used in mapping files.
// Registration is setup work and is not safe for concurrent use; lookups are.
type Registry struct {
	filters map[string]mapper.Filter
	hooks   map[string]*RegisteredHook
}

// RegisteredHook is a hook with the kinds it may be attached to.
type RegisteredHook struct {
	Name string
	Hook mapper.Hook
	// Kinds restricts where the hook may be used. Empty means anywhere.
	Kinds []mapper.HookKind
}

// Allows reports whether the hook may be attached as kind.
func (h *RegisteredHook) Allows(kind mapper.HookKind) bool {
	return len(h.Kinds) == 0 || slices.Contains(h.Kinds, kind)
}

// NewEmptyRegistry creates a registry without any entries.
func NewEmptyRegistry() *Registry {
	return &Registry{
		filters: make(map[string]mapper.Filter),
		hooks:   make(map[string]*RegisteredHook),
	}
}

// NewRegistry creates a registry holding the builtin filters and hooks.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	registerBuiltins(r)

	return r
}

// RegisterFilter adds or replaces a named filter.
func (r *Registry) RegisterFilter(name string, f mapper.Filter) *Registry {
	r.filters[name] = f
	return r
}

// RegisterHook adds or replaces a named hook. Kinds limit where it may be
// attached; none means any kind.
func (r *Registry) RegisterHook(name string, h mapper.Hook, kinds ...mapper.HookKind) *Registry {
	r.hooks[name] = &RegisteredHook{Name: name, Hook: h, Kinds: kinds}
	return r
}

// Filter returns the filter registered as name.
func (r *Registry) Filter(name string) (mapper.Filter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// Hook returns the hook registered as name, or nil.
func (r *Registry) Hook(name string) *RegisteredHook {
	return r.hooks[name]
}

// HasFilter returns true if a filter with the given name exists.
func (r *Registry) HasFilter(name string) bool {
	_, exists := r.filters[name]
	return exists
}

// FilterNames returns all filter names, sorted.
func (r *Registry) FilterNames() []string {
	return common.SortedKeys(r.filters)
}

// HookNames returns all hook names, sorted.
func (r *Registry) HookNames() []string {
	return common.SortedKeys(r.hooks)
}

// Chain composes the named filters in order. An empty list yields the
// identity filter.
func (r *Registry) Chain(names []string) (mapper.Filter, error) {
	var chained mapper.Filter

	for _, name := range names {
		f, ok := r.filters[name]
		if !ok {
			return mapper.Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}

		chained = chained.Chain(f)
	}

	return chained, nil
}
