package mapping

import (
	"errors"
	"fmt"
	"sort"
)

// errCycle is returned by buildOrder when dependencies loop.
var errCycle = errors.New("cycle detected")

// cycleError lists the nodes that could not be ordered.
type cycleError struct {
	nodes []int
}

func (e *cycleError) Error() string {
	return fmt.Sprintf("%v among %d mappers", errCycle, len(e.nodes))
}

func (e *cycleError) Unwrap() error {
	return errCycle
}

// buildOrder returns indices in build order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must be built before i.
//
// The result is deterministic: when multiple nodes are available, the
// smallest index is picked. If a cycle exists, a *cycleError listing every
// node left unordered is returned.
func buildOrder(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	// Deterministic traversal.
	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		var left []int

		for i := range n {
			if indeg[i] > 0 {
				left = append(left, i)
			}
		}

		return nil, &cycleError{nodes: left}
	}

	return order, nil
}

// dependencyIndices resolves the dependencies of every mapper to indices.
// Unknown names are ignored; validation reports them separately.
func dependencyIndices(mf *MappingFile) func(i int) []int {
	index := make(map[string]int, len(mf.Mappers))
	for i := range mf.Mappers {
		if _, dup := index[mf.Mappers[i].Name]; !dup {
			index[mf.Mappers[i].Name] = i
		}
	}

	return func(i int) []int {
		var deps []int

		for _, name := range mf.Mappers[i].Dependencies() {
			if d, ok := index[name]; ok {
				deps = append(deps, d)
			}
		}

		return deps
	}
}
