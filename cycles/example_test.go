package cycles_test

import (
	"fmt"

	"github.com/katalvlaran/funcgraph/cycles"
	"github.com/katalvlaran/funcgraph/transition"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistanceTour
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The functional graph of f = [1,2,0,2,3,4] on six indices:
//
//	    5 ──▶ 4 ──▶ 3 ──▶ 2
//	                    ╱ ▲
//	             0 ──▶ 1  │
//	             ▲────────╯
//
//	One 3-cycle {0,1,2}; indices 3, 4, 5 feed into it at distances
//	1, 2 and 3.
//
// Complexity: O(n) time, O(n) memory.
func ExampleDistanceTour() {
	f, err := transition.NewExplicit([]int{1, 2, 0, 2, 3, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tour, err := cycles.DistanceTour(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("distances:   ", tour.Distances)
	fmt.Println("tour lengths:", tour.TourLengths)

	period, _ := cycles.Period(f)
	maxDist, _ := cycles.MaxDistance(f)
	fmt.Println("period:      ", period)
	fmt.Println("max distance:", maxDist)
	// Output:
	// distances:    [0 0 0 1 2 3]
	// tour lengths: [3 3 3 3 3 3]
	// period:       3
	// max distance: 3
}

// ExampleComponents enumerates the cycles of a permutation lazily.
func ExampleComponents() {
	// (0 1) and (2 3 4) — two disjoint cycles.
	f, err := transition.NewExplicit([]int{1, 0, 3, 4, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	it, err := cycles.Components(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for group, ok := it.Next(); ok; group, ok = it.Next() {
		fmt.Println("cycle:", group)
	}
	// Output:
	// cycle: [0 1]
	// cycle: [2 3 4]
}
