package codegen

import (
	"sort"

	"github.com/teranos/girgen/analysis/supertypes"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/library"
)

// GenerationOrder sorts ids so every type comes after the ancestors it
// depends on. Dependencies outside ids are ignored. Among ready types the
// one listed first in ids goes first, so the result is deterministic.
func GenerationOrder(e *env.Env, ids []library.TypeID) ([]library.TypeID, error) {
	index := make(map[library.TypeID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	order, err := topoSort(len(ids), func(i int) []int {
		var deps []int
		for _, dep := range supertypes.Dependencies(e, ids[i]) {
			if j, ok := index[dep]; ok {
				deps = append(deps, j)
			}
		}
		return deps
	})
	if err != nil {
		return nil, err
	}

	sorted := make([]library.TypeID, len(order))
	for i, j := range order {
		sorted[i] = ids[j]
	}
	return sorted, nil
}

// topoSort returns indices in execution order. depsFn(i) yields indices
// that must come before i. When several nodes are ready the smallest index
// goes first.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := 0; i < n; i++ {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, errors.Newf("dependency index out of range: %d depends on %d", i, d)
			}
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int
	for i := 0; i < n; i++ {
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
				// Insert while keeping ready sorted
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errors.Wrapf(errors.ErrCycle, "%d of %d types could not be ordered", n-len(order), n)
	}
	return order, nil
}
