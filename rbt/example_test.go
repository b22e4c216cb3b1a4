package rbt_test

import (
	"fmt"
	"slices"

	"github.com/cybrota/trees/rbt"
)

func Example() {
	t := rbt.New(1, 2, 3, 4, 5, 6, 7)
	fmt.Println(slices.Collect(t.PreOrder()))
	fmt.Println(t.Height(), t.BlackHeight(), t.Verify())

	for _, k := range []int{2, 4, 6} {
		_ = t.Delete(k)
	}
	fmt.Println(t.Keys(), t.Verify())
	// Output:
	// [2 1 4 3 6 5 7]
	// 3 2 <nil>
	// [1 3 5 7] <nil>
}

func ExampleTree_PostOrder() {
	t := rbt.New(2, 1, 3)
	for k := range t.PostOrder() {
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output: 1 3 2
}
