// Package splinebasis inverts spline basis constraint matrices and prints the
// inverse as integer tables.
package splinebasis

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/notargets/gospline/readfiles"
	"github.com/notargets/gospline/utils"
)

var (
	ErrNotSquare = utils.ErrNotSquare
	ErrSingular  = utils.ErrSingular
)

type PrintOptions struct {
	Width int // minimum field width of each integer
	Split int // columns per printed line, 0 prints each row on one line
}

type Preset struct {
	Name string
	File string
	PrintOptions
}

var (
	BSpline = Preset{Name: "bspline", File: "bspline.txt", PrintOptions: PrintOptions{Width: 2}}
	TSpline = Preset{Name: "tspline", File: "tspline.txt", PrintOptions: PrintOptions{Width: 3, Split: 32}}
)

// LoadMatrix reads a rectangular table of reals, skipping lines that start with '#'
func LoadMatrix(filename string) (A utils.Matrix, err error) {
	var (
		T    readfiles.Table
		rows [][]float64
	)
	T, err = readfiles.ReadTableFile(filename, readfiles.ReadOptions{
		CommentPrefix: "#",
		Rectangular:   true,
	})
	if err != nil {
		return
	}
	if rows, err = T.Floats(); err != nil {
		return
	}
	if A, err = utils.NewMatrixFromRows(rows); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func Invert(A utils.Matrix) (Ai utils.Matrix, err error) {
	return A.Inverse()
}

// Print writes every entry of M rounded to the nearest integer as "%*d,",
// entries separated by one space, Split entries per line.
func Print(w io.Writer, M utils.Matrix, opts PrintOptions) (err error) {
	var (
		nr, nc = M.Dims()
		bw     = bufio.NewWriter(w)
		split  = opts.Split
	)
	if split <= 0 || split > nc {
		split = nc
	}
	for i := 0; i < nr; i++ {
		row := M.Row(i)
		for j, val := range row {
			if j%split != 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*d,", opts.Width, int64(math.Round(val)))
			if (j+1)%split == 0 || j == nc-1 {
				bw.WriteByte('\n')
			}
		}
	}
	return bw.Flush()
}

// Run loads p.File from dir, inverts it and prints the inverse to w
func Run(p Preset, dir string, w io.Writer) (Ai utils.Matrix, err error) {
	var (
		A  utils.Matrix
		fn = p.File
	)
	if dir != "" && !filepath.IsAbs(p.File) {
		fn = filepath.Join(dir, p.File)
	}
	if A, err = LoadMatrix(fn); err != nil {
		return
	}
	nr, nc := A.Dims()
	utils.Debugf("%s: %dx%d constraint matrix", fn, nr, nc)
	if Ai, err = Invert(A); err != nil {
		err = fmt.Errorf("%s: %w", fn, err)
		return
	}
	err = Print(w, Ai, p.PrintOptions)
	return
}
