// Package persistence extracts per-dimension persistence pairs from a PHAT
// boundary-matrix dump and the matching alpha-shape filtration file.
package persistence

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/notargets/gospline/readfiles"
	"github.com/notargets/gospline/utils"
)

// Dimensions is the number of homology dimensions written per run (b0, b1, b2)
const Dimensions = 3

var (
	ErrBadTime   = errors.New("time must be a finite, non-negative number below 2^64/10000")
	ErrCellIndex = errors.New("cell index out of range")
)

// TimeIndex formats time as the five digit index used in file names:
// time*10000 truncated to an unsigned integer, zero padded to width 5.
func TimeIndex(time float64) (string, error) {
	if math.IsNaN(time) || math.IsInf(time, 0) || time < 0 {
		return "", fmt.Errorf("%v: %w", time, ErrBadTime)
	}
	// float64(MaxUint64) rounds up to 2^64, which no uint64 can hold
	if time*10000 >= math.MaxUint64 {
		return "", fmt.Errorf("%v overflows the time index: %w", time, ErrBadTime)
	}
	return fmt.Sprintf("%05d", uint64(time*10000)), nil
}

type FileSet struct {
	Dir     string
	FileID  string
	TimeStr string
}

func NewFileSet(dir, fileID string, time float64) (files FileSet, err error) {
	files = FileSet{Dir: dir, FileID: fileID}
	files.TimeStr, err = TimeIndex(time)
	return
}

// Name returns <file_id>.<kind>.<timeidx>.conan, inside Dir when one is set
func (fs FileSet) Name(kind string) string {
	name := fmt.Sprintf("%s.%s.%s.conan", fs.FileID, kind, fs.TimeStr)
	if fs.Dir == "" {
		return name
	}
	return filepath.Join(fs.Dir, name)
}

func (fs FileSet) Boundary() string { return fs.Name("phat") }
func (fs FileSet) Alpha() string    { return fs.Name("alpha") }
func (fs FileSet) Output(d int) string {
	return fs.Name(fmt.Sprintf("b%d", d))
}

// BoundaryMatrix holds one row of cell indices per line of the boundary file
type BoundaryMatrix struct {
	Rows [][]int
}

func (B BoundaryMatrix) Len() int { return len(B.Rows) }

// FirstColumn returns the leading cell index of every row
func (B BoundaryMatrix) FirstColumn() (I utils.Index) {
	I = utils.NewIndex(len(B.Rows))
	for i, row := range B.Rows {
		I[i] = row[0]
	}
	return
}

// AlphaTable holds the filtration value and dimension of each cell, indexed by
// cell id.
type AlphaTable struct {
	Alpha    []float64
	CellType utils.Index
}

func (A AlphaTable) Len() int { return len(A.Alpha) }

// ReadBoundary reads whitespace separated integer rows, dropping the first line
func ReadBoundary(filename string) (B BoundaryMatrix, err error) {
	var (
		T readfiles.Table
	)
	T, err = readfiles.ReadTableFile(filename, readfiles.ReadOptions{
		SkipLines:   1,
		Rectangular: true,
		Verbose:     true,
	})
	if err != nil {
		return
	}
	B.Rows, err = T.Ints()
	return
}

// ReadAlpha reads the first two fields of each non comment line as the alpha
// value and the cell type. Cell types written as floats are truncated.
func ReadAlpha(filename string) (A AlphaTable, err error) {
	var (
		T     readfiles.Table
		types []float64
	)
	T, err = readfiles.ReadTableFile(filename, readfiles.ReadOptions{
		CommentPrefix: "#",
		MaxFields:     2,
		Verbose:       true,
	})
	if err != nil {
		return
	}
	if A.Alpha, err = T.Column(0); err != nil {
		return
	}
	if types, err = T.Column(1); err != nil {
		return
	}
	A.CellType = utils.NewFromFloat(types)
	return
}

// Extract selects the boundary rows whose first cell has type d and maps every
// cell index in those rows to its alpha value. Indices outside the alpha
// table are reported as ErrCellIndex.
func Extract(B BoundaryMatrix, A AlphaTable, d int) (P [][]float64, err error) {
	var (
		first = B.FirstColumn()
		nCell = A.Len()
	)
	if pos, berr := first.CheckBounds(nCell); berr != nil {
		err = fmt.Errorf("boundary row %d: %v: %w", pos, berr, ErrCellIndex)
		return
	}
	rows := A.CellType.Subset(first).Find(d)
	P = make([][]float64, len(rows))
	for k, i := range rows {
		row := utils.Index(B.Rows[i])
		if pos, berr := row.CheckBounds(nCell); berr != nil {
			err = fmt.Errorf("boundary row %d, column %d: %v: %w", i, pos, berr, ErrCellIndex)
			return
		}
		P[k] = make([]float64, len(row))
		for j, cell := range row {
			P[k][j] = A.Alpha[cell]
		}
	}
	return
}

// Count returns the number of values in a set of extracted rows
func Count(P [][]float64) (n int) {
	for _, row := range P {
		n += len(row)
	}
	return
}
