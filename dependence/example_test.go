package dependence_test

import (
	"fmt"

	"github.com/katalvlaran/lvpoly/dependence"
	"github.com/katalvlaran/lvpoly/matrix"
)

// ExampleExtractLoop summarises a self-dependence of stride 2 on the outer
// loop of a 2-deep nest.
func ExampleExtractLoop() {
	scop := &dependence.Scop{Statements: []*dependence.Statement{{Depth: 2, Loops: []int{0, 1}}}}
	// [eq | i j | i' j' | const]
	dom := matrix.MustFromInt64(6,
		[]int64{1, 1, 0, 0, 0, 0}, []int64{1, -1, 0, 0, 0, 9}, // 0 <= i <= 9
		[]int64{1, 0, 1, 0, 0, 0}, []int64{1, 0, -1, 0, 0, 9}, // 0 <= j <= 9
		[]int64{1, 0, 0, 1, 0, 0}, []int64{1, 0, 0, -1, 0, 9}, // 0 <= i' <= 9
		[]int64{1, 0, 0, 0, 1, 0}, []int64{1, 0, 0, 0, -1, 9}, // 0 <= j' <= 9
		[]int64{0, -1, 0, 1, 0, -2}, // i' = i + 2
	)
	dep := &dependence.Dependence{Kind: dependence.RAW, Domain: dom}

	ddvs, err := dependence.ExtractLoop(scop, []*dependence.Dependence{dep}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ddvs[0])

	// Output:
	// [2, *]
}

// ExamplePruneTransitively drops S0->S2 because S0->S1->S2 reaches the same
// instances.
func ExamplePruneTransitively() {
	bounds := [][]int64{{1, 1, 0, 0}, {1, -1, 0, 9}, {1, 0, 1, 0}, {1, 0, -1, 9}}
	dom := func() *matrix.Dense {
		return matrix.MustFromInt64(4, append(bounds, []int64{0, -1, 1, 0})...)
	}
	scop := &dependence.Scop{}
	for i := 0; i < 3; i++ {
		scop.Statements = append(scop.Statements, &dependence.Statement{Depth: 1, Loops: []int{0}})
	}
	deps := []*dependence.Dependence{
		{ID: 1, Source: 0, Target: 1, Kind: dependence.RAW, Domain: dom()},
		{ID: 2, Source: 1, Target: 2, Kind: dependence.WAR, Domain: dom()},
		{ID: 3, Source: 0, Target: 2, Kind: dependence.WAW, Domain: dom()},
	}

	kept, err := dependence.PruneTransitively(scop, deps)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range kept {
		fmt.Println(d)
	}

	// Output:
	// dep#1 RAW S0->S1 array 0
	// dep#2 WAR S1->S2 array 0
}
