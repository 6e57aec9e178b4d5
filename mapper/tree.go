package mapper

import (
	"reflect"
)

// Symbol is the alternate representation of a map key. Lookups try a key as
// a plain string first and as a Symbol second, so documents built with
// either kind of key read the same. Writes always use plain string keys.
type Symbol string

// step is a single access: a map key or a list index.
type step struct {
	key     string
	index   int
	isIndex bool
}

// Lookup returns the value stored under key in node, trying the key's
// string form and then its Symbol form. A nil value counts as absent, and
// so does a node that is not a map.
func Lookup(node any, key string) (any, bool) {
	switch n := node.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return present(n[key])
	case map[Symbol]any:
		return present(n[Symbol(key)])
	case map[any]any:
		if v, ok := present(n[key]); ok {
			return v, true
		}

		return present(n[Symbol(key)])
	}

	return lookupReflect(node, key)
}

func lookupReflect(node any, key string) (any, bool) {
	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	kt := rv.Type().Key()

	var candidates []reflect.Value

	switch kt.Kind() {
	case reflect.String:
		candidates = append(candidates, reflect.ValueOf(key).Convert(kt))
	case reflect.Interface:
		candidates = append(candidates, reflect.ValueOf(key), reflect.ValueOf(Symbol(key)))
	default:
		return nil, false
	}

	for _, k := range candidates {
		if !k.Type().AssignableTo(kt) {
			continue
		}

		v := rv.MapIndex(k)
		if !v.IsValid() {
			continue
		}

		if out, ok := present(v.Interface()); ok {
			return out, true
		}
	}

	return nil, false
}

// Index returns element i of the list node. Out of range indexes, nil
// elements and non-list nodes count as absent.
func Index(node any, i int) (any, bool) {
	if i < 0 {
		return nil, false
	}

	switch n := node.(type) {
	case nil:
		return nil, false
	case []any:
		if i >= len(n) {
			return nil, false
		}

		return present(n[i])
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	if i >= rv.Len() {
		return nil, false
	}

	return present(rv.Index(i).Interface())
}

// AsList returns the elements of node when it is a list. Byte slices are
// treated as scalars.
func AsList(node any) ([]any, bool) {
	switch n := node.(type) {
	case nil:
		return nil, false
	case []any:
		return n, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// present reports whether v holds a value. Typed nil pointers, maps and
// slices are treated the same as an untyped nil.
func present(v any) (any, bool) {
	if isNil(v) {
		return nil, false
	}

	return v, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// extract walks steps over node. It stops at the first missing key or
// index, or at the first node that cannot be indexed the way the step asks.
func extract(node any, steps []step) (any, bool) {
	cur := node

	for _, s := range steps {
		var ok bool
		if s.isIndex {
			cur, ok = Index(cur, s.index)
		} else {
			cur, ok = Lookup(cur, s.key)
		}

		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// newContainer returns an empty list when next addresses a list slot and an
// empty map otherwise.
func newContainer(next step) any {
	if next.isIndex {
		return []any{}
	}

	return map[string]any{}
}

// writeResult tells why insert did or did not write.
type writeResult int

const (
	written writeResult = iota
	occupied
	mismatch
)

// insert walks steps below container, creating missing intermediate
// containers, and stores leaf() at the final location unless a non-nil
// value is already there. It returns the container to store back into the
// parent, which differs from the argument when a list had to grow.
func insert(container any, steps []step, leaf func() (any, error)) (any, writeResult, error) {
	s := steps[0]
	rest := steps[1:]

	switch c := container.(type) {
	case map[string]any:
		if s.isIndex {
			return container, mismatch, nil
		}

		next, res, err := descend(c[s.key], rest, leaf)
		if err != nil || res != written {
			return container, res, err
		}

		c[s.key] = next

		return c, written, nil

	case []any:
		if !s.isIndex {
			return container, mismatch, nil
		}

		var cur any
		if s.index < len(c) {
			cur = c[s.index]
		}

		next, res, err := descend(cur, rest, leaf)
		if err != nil || res != written {
			return container, res, err
		}

		for len(c) <= s.index {
			c = append(c, nil)
		}

		c[s.index] = next

		return c, written, nil

	default:
		return container, mismatch, nil
	}
}

// descend handles the value found at one step: at the end of the path it is
// the leaf slot, otherwise it is the next container (created when missing).
func descend(cur any, rest []step, leaf func() (any, error)) (any, writeResult, error) {
	if len(rest) == 0 {
		if !isNil(cur) {
			return cur, occupied, nil
		}

		v, err := leaf()
		if err != nil {
			return nil, written, err
		}

		return v, written, nil
	}

	if isNil(cur) {
		cur = newContainer(rest[0])
	}

	return insert(cur, rest, leaf)
}
