package mapping

import (
	"errors"
	"fmt"
	"slices"
)

// ErrStageCycle is returned when stage categories form a loop.
var ErrStageCycle = errors.New("stage categories form a cycle")

// OrderStages returns the stages sorted into category order and whether
// that differs from the declared order. Build never reorders; callers opt in
// by building from the returned stages.
//
// Stages are chained by category only when every stage names both its from
// and to category; stage j then runs after stage i when i produces the
// category j reads. Otherwise the declared order is kept.
func OrderStages(stages []StageDef) ([]StageDef, bool, error) {
	out := slices.Clone(stages)

	for i := range stages {
		if !stages[i].IsChained() {
			return out, false, nil
		}
	}

	producers := map[string][]int{}
	for i := range stages {
		producers[stages[i].To] = append(producers[stages[i].To], i)
	}

	order, err := topoSort(len(stages), func(j int) []int {
		var deps []int

		for _, i := range producers[stages[j].From] {
			if i != j {
				deps = append(deps, i)
			}
		}

		return deps
	})
	if err != nil {
		return nil, false, err
	}

	reordered := false

	for k, i := range order {
		out[k] = stages[i]
		if k != i {
			reordered = true
		}
	}

	return out, reordered, nil
}

// topoSort returns node indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// ready the smallest index goes first, so an already ordered input comes
// back unchanged.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
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
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return nil, ErrStageCycle
	}

	return order, nil
}
