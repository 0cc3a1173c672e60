package pip_test

import (
	"fmt"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/pip"
)

// ExampleSolve computes the lexicographic minimum of 0 <= i <= 10.
func ExampleSolve() {
	dom := matrix.MustFromInt64(3,
		[]int64{1, 1, 0},   // i >= 0
		[]int64{1, -1, 10}, // 10 - i >= 0
	)
	tree, err := pip.Solve(&pip.Problem{Domain: dom, NVar: 1}, pip.WithInteger())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tree)

	// Output:
	// [0]
}

// ExampleSolve_parametric solves 0 <= i <= n for a parameter n of any sign.
func ExampleSolve_parametric() {
	dom := matrix.MustFromInt64(4,
		[]int64{1, 1, 0, 0},  // i >= 0
		[]int64{1, -1, 1, 0}, // n - i >= 0
	)
	tree, err := pip.Solve(&pip.Problem{Domain: dom, NVar: 1, NParam: 1},
		pip.WithInteger(), pip.WithUnrestrictedParams())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tree)

	// Output:
	// if(p0 >= 0; [0]; nil)
}
