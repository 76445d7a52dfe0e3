// Package bicubic evaluates a periodic bicubic Hermite interpolant over a 2D
// sample grid.
package bicubic

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gospline/utils"
)

var ErrEmptyGrid = errors.New("sample grid is empty")

type Interpolator2D interface {
	Eval(x, y float64) float64
}

var _ Interpolator2D = &Patch{}

// Row r of the constraint matrix applies one Hermite condition to the
// monomial coefficients a[4i+j] of f(p,q) = sum a[4i+j] p^i q^j.
// Rows are grouped in fours, each group over the corners (p,q) =
// (0,0), (0,1), (1,0), (1,1):
//
//	0-3   f
//	4-7   df/dq
//	8-11  df/dp
//	12-15 d2f/dpdq
//
// The four groups are fed with I, Ix, Iy and Ixy in that order.
var constraints = [16 * 16]float64{
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,

	0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0,
	0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3,

	0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0,
	0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,

	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0,
	0, 0, 0, 0, 0, 1, 2, 3, 0, 2, 4, 6, 0, 3, 6, 9,
}

// Corner offsets in the order used by the constraint rows
var (
	cornerX = [4]int{0, 0, 1, 1}
	cornerY = [4]int{0, 1, 0, 1}
)

// ConstraintMatrix returns a fresh copy of the 16x16 Hermite constraint matrix
func ConstraintMatrix() utils.Matrix {
	data := make([]float64, len(constraints))
	copy(data, constraints[:])
	return utils.NewMatrix(16, 16, data)
}

type Patch struct {
	I, Ix, Iy, Ixy utils.Matrix
	Ai             utils.Matrix // inverse of the constraint matrix
	nr, nc         int
}

// New builds the derived difference grids of I with wrap-around boundaries
// and inverts the constraint matrix once for the lifetime of the Patch.
// I is copied; later changes to it are not seen by the Patch.
func New(I utils.Matrix) (bc *Patch, err error) {
	if I.M == nil || I.M.IsEmpty() {
		err = ErrEmptyGrid
		return
	}
	bc = &Patch{I: I.Copy()}
	bc.nr, bc.nc = bc.I.Dims()
	bc.Ix = utils.PeriodicDiff(bc.I, 0)
	bc.Iy = utils.PeriodicDiff(bc.I, 1)
	bc.Ixy = utils.PeriodicDiff(bc.Ix, 1)
	if bc.Ai, err = ConstraintMatrix().Inverse(); err != nil {
		err = fmt.Errorf("constraint matrix: %w", err)
		return
	}
	bc.I.SetReadOnly("I")
	bc.Ix.SetReadOnly("Ix")
	bc.Iy.SetReadOnly("Iy")
	bc.Ixy.SetReadOnly("Ixy")
	bc.Ai.SetReadOnly("Ai")
	return
}

func (bc *Patch) Dims() (nr, nc int) { return bc.nr, bc.nc }

// Coefficients returns the monomial coefficients a[4i+j] of the cell that
// contains (x, y), and the local coordinates (p, q) of the point in that cell.
func (bc *Patch) Coefficients(x, y float64) (a []float64, p, q float64) {
	var (
		x0, y0 = math.Floor(x), math.Floor(y)
		v      = make([]float64, 16)
	)
	p, q = x-x0, y-y0
	for k := 0; k < 4; k++ {
		i := utils.Mod(int(x0)+cornerX[k], bc.nr)
		j := utils.Mod(int(y0)+cornerY[k], bc.nc)
		v[k] = bc.I.At(i, j)
		v[k+4] = bc.Ix.At(i, j)
		v[k+8] = bc.Iy.At(i, j)
		v[k+12] = bc.Ixy.At(i, j)
	}
	a = bc.Ai.MulVec(v)
	return
}

func (bc *Patch) Eval(x, y float64) (r float64) {
	a, p, q := bc.Coefficients(x, y)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r += a[4*i+j] * utils.POW(p, i) * utils.POW(q, j)
		}
	}
	return
}

// EvalGrid samples the interpolant on an nr x nc lattice with spacing step,
// J[i,j] = Eval(i*step, j*step).
func (bc *Patch) EvalGrid(nr, nc int, step float64) (J utils.Matrix) {
	J = utils.NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			J.Set(i, j, bc.Eval(float64(i)*step, float64(j)*step))
		}
	}
	return
}
