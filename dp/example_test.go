package dp_test

import (
	"fmt"

	"github.com/StefanJevtic63/ar/dp"
)

func ExampleSolve() {
	// Problem: (¬x ∨ ¬y ∨ z) ∧ (¬x ∨ y) ∧ (x ∨ ¬z)

	// Encode it with integers: x=1, y=2, z=3, negative for negation.
	problem := [][]int{
		{-1, -2, 3},
		{-1, 2},
		{1, -3},
	}

	fmt.Println(dp.Solve(problem))
	// Output: true
}

func ExampleSolve_unsatisfiable() {
	// x and ¬x cannot both hold.
	problem := [][]int{
		{1},
		{-1},
	}

	fmt.Println(dp.Solve(problem))
	// Output: false
}
