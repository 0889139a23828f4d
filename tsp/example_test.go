package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/cycletsp/builder"
	"github.com/katalvlaran/cycletsp/tsp"
)

// ExampleApproximate merges three light triangles joined by a single light
// bridge 2–3.
func ExampleApproximate() {
	w := weightsWithLight(9, append(triangles(3), [2]int{2, 3})...)
	cover := [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}

	res, err := tsp.Approximate(w, cover)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tsp.DebugString(res.Tour))
	fmt.Println("cost:", res.Cost, "heavy:", res.HeavyEdges)
	// Output:
	// [0 1 7 8 6 4 5 3 2 | 0]
	// cost: 11 heavy: 2
}

// ExampleApproximate_demo solves the 21-vertex demonstration instance.
func ExampleApproximate_demo() {
	in := builder.Demo21()

	res, err := tsp.Approximate(in.Weights, in.Cover)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour)
	fmt.Println("cost:", res.Cost, "bad cycles:", res.Stats.InitialBad)
	// Output:
	// [0 18 19 20 4 5 3 14 12 13 11 9 10 7 8 6 15 16 17 1 2]
	// cost: 25 bad cycles: 2
}
