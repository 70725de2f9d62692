// SPDX-License-Identifier: MIT
package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/systax/connectivity"
)

// ExampleSingleLinkage groups points on a line whose gaps stay below 1.5.
func ExampleSingleLinkage() {
	xs := []float64{0, 1, 5, 6, 6.9}
	labels := connectivity.SingleLinkage(len(xs), func(i, j int) bool {
		d := xs[i] - xs[j]
		if d < 0 {
			d = -d
		}
		return d < 1.5
	})
	fmt.Println(labels)
	// Output:
	// [0 0 1 1 1]
}
