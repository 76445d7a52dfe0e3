package utils

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotSquare = errors.New("matrix is not square")
	ErrSingular  = errors.New("unable to invert, matrix is singular")
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows copies a rectangular set of rows into a new Matrix
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		err = fmt.Errorf("cannot build a matrix from empty rows")
		return
	}
	var (
		nr, nc = len(rows), len(rows[0])
		data   = make([]float64, 0, nr*nc)
	)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("row %d has %d columns, expected %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	R = NewMatrix(nr, nc, data)
	return
}

func NewIdentity(n int) (R Matrix) {
	R = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		R.M.Set(i, i, 1)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }
func (m Matrix) Name() string              { return m.name }
func (m Matrix) IsReadOnly() bool          { return m.readOnly }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

// MulVec returns m * v, v must have as many entries as m has columns
func (m Matrix) MulVec(v []float64) (r []float64) {
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
	)
	if len(v) != nc {
		panic(fmt.Errorf("dimension mismatch: matrix has %d columns, vector has %d entries", nc, len(v)))
	}
	r = make([]float64, nr)
	for i := 0; i < nr; i++ {
		r[i] = floats.Dot(data[i*nc:(i+1)*nc], v)
	}
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	var (
		nr, nc = m.Dims()
	)
	i, j = lim(i, nr), lim(j, nc)
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Subtract(a Matrix) Matrix { // Changes receiver
	var (
		data  = m.M.RawMatrix().Data
		dataA = a.M.RawMatrix().Data
	)
	m.checkWritable()
	for i := range data {
		data[i] -= dataA[i]
	}
	return m
}

// Non chainable methods
func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("unable to invert %dx%d matrix: %w", nr, nc, ErrNotSquare)
		return
	}
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = ErrSingular
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = ErrSingular
		return
	}
	if IsNan(R) || IsInf(R) {
		err = ErrSingular
	}
	return
}

func (m Matrix) Row(i int) []float64 {
	var (
		nr, _ = m.M.Dims()
	)
	i = lim(i, nr)
	row := make([]float64, len(m.M.RawRowView(i)))
	copy(row, m.M.RawRowView(i))
	return row
}

func (m Matrix) Col(j int) []float64 {
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.M.Dims()
		vData  = make([]float64, nr)
	)
	j = lim(j, nc)
	for i := range vData {
		vData[i] = data[i*nc+j]
	}
	return vData
}

func (m Matrix) Min() (min float64) {
	return floats.Min(m.M.RawMatrix().Data)
}

func (m Matrix) Max() (max float64) {
	return floats.Max(m.M.RawMatrix().Data)
}

// EqualApprox compares element-wise within an absolute tolerance
func (m Matrix) EqualApprox(A Matrix, tol float64) bool {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		return false
	}
	return floats.EqualApprox(m.M.RawMatrix().Data, A.M.RawMatrix().Data, tol)
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func lim(i, imax int) int {
	if i < 0 {
		return imax + i // Support indexing from end, -1 is imax
	}
	return i
}
