// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/systax/matrix"
)

// ExampleInverse converts a cartesian position back into fractional
// coordinates of a hexagonal cell.
func ExampleInverse() {
	cell := matrix.Mat3{{2, 0, 0}, {-1, 1.7320508075688772, 0}, {0, 0, 10}}
	inv, err := matrix.Inverse(cell)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	frac := inv.VecMul(matrix.Vec3{1, 1.7320508075688772, 5})
	fmt.Printf("%.2f %.2f %.2f\n", frac[0], frac[1], frac[2])
	// Output:
	// 1.00 1.00 0.50
}
