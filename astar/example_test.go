// Package astar_test provides runnable examples for the A* search.
// Each example runs via "go test -run Example", showing both code and
// expected output.
package astar_test

import (
	"fmt"
	"strings"

	"github.com/bendico765/heuristic-steiner-tree/astar"
	"github.com/bendico765/heuristic-steiner-tree/core"
)

// ExampleShortestPath demonstrates the search on a triangle where the
// direct edge is more expensive than the two-hop detour.
// Complexity: O((V+E) log V).
func ExampleShortestPath() {
	// 1) Build a weighted triangle. The direct A-C edge costs 5,
	//    the detour through B costs 1+2=3.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	// 2) With the zero heuristic the search degrades to Dijkstra,
	//    which is always admissible.
	path, err := astar.ShortestPath(g, "A", "C", astar.Zero())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The detour wins.
	fmt.Printf("path: %s\n", strings.Join(path.Vertices, " -> "))
	fmt.Printf("weight: %g\n", path.Weight)
	// Output:
	// path: A -> B -> C
	// weight: 3
}

// ExampleShortestPath_heuristic shows an informed search on a 3×3 unit
// grid using the Manhattan distance between "r,c" cells, which never
// overestimates the true cost on such grids.
func ExampleShortestPath_heuristic() {
	g := core.NewGraph(core.WithWeighted())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r, c+1), 1)
			}
			if r+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r+1, c), 1)
			}
		}
	}

	manhattan := astar.HeuristicFunc(func(u, v string) float64 {
		var ur, uc, vr, vc int
		fmt.Sscanf(u, "%d,%d", &ur, &uc)
		fmt.Sscanf(v, "%d,%d", &vr, &vc)
		dr, dc := ur-vr, uc-vc
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		return float64(dr + dc)
	})

	path, err := astar.ShortestPath(g, "0,0", "2,2", manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("weight: %g, hops: %d\n", path.Weight, len(path.Vertices)-1)
	// Output: weight: 4, hops: 4
}
