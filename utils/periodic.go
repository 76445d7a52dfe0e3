package utils

import "fmt"

/*
	Periodic (toroidal) finite differences on a 2D grid.

	Roll(I, shift, axis) moves every entry shift places along axis, wrapping
	around the edge: R[i,j] = I[(i-shift) mod nr, j] for axis 0.

	PeriodicDiff(I, axis) = Roll(I, 1, axis) - I, so for axis 0
	D[i,j] = I[i-1 mod nr, j] - I[i,j]. The grid edges wrap; there is no
	clamped or mirrored boundary.
*/

func Roll(I Matrix, shift, axis int) (R Matrix) {
	var (
		nr, nc = I.Dims()
		data   = I.Data()
	)
	R = NewMatrix(nr, nc)
	dataR := R.Data()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			var iS, jS = i, j
			switch axis {
			case 0:
				iS = Mod(i-shift, nr)
			case 1:
				jS = Mod(j-shift, nc)
			default:
				panic(fmt.Errorf("invalid axis %d for a 2D grid", axis))
			}
			dataR[i*nc+j] = data[iS*nc+jS]
		}
	}
	return
}

func PeriodicDiff(I Matrix, axis int) (D Matrix) {
	D = Roll(I, 1, axis)
	D.Subtract(I)
	return
}
