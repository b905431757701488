// File: variant/example_test.go
package variant_test

import (
	"fmt"

	"github.com/katalvlaran/tilesolve/variant"
)

// ExampleList_Repr expands one rotatable tile and renders the variant
// strings used by solver diagnostics.
func ExampleList_Repr() {
	l := variant.NewList([]variant.Spec{{Rotation: true}})

	fmt.Println("variants:", l.Count())
	for v := 0; v < l.Count(); v++ {
		fmt.Println(l.Repr(v))
	}

	// Output:
	// variants: 4
	// 0 (tile #0, transform)
	// 1 (tile #0, transform 90d)
	// 2 (tile #0, transform 180d)
	// 3 (tile #0, transform 270d)
}
