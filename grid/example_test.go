// Package grid_test provides runnable examples for the grid compiler.
package grid_test

import (
	"fmt"

	"github.com/jjac/pathfind/dijkstra"
	"github.com/jjac/pathfind/grid"
)

// ExampleGrid_ToAdjList compiles a small maze and routes around its wall.
// 1 = walkable, 0 = wall:
//
//	S 0 G
//	. 0 .
//	. . .
func ExampleGrid_ToAdjList() {
	g, err := grid.NewGrid([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.ShortestPath(g.ToAdjList(), grid.CoordKey(0, 0), grid.CoordKey(2, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("distance=%d hops=%d\n", res.Distance, len(res.Path)-1)
	// Output: distance=6 hops=6
}

// ExamplePackKey demonstrates the packed coordinate encoding: two 16-bit
// axes in one integer, x in the high half.
func ExamplePackKey() {
	id, err := grid.PackKey(3, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	x, y, _ := grid.ParsePackKey(id)

	fmt.Printf("id=%s x=%d y=%d\n", id, x, y)
	// Output: id=196613 x=3 y=5
}
