package splinebasis

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gospline/bicubic"
	"github.com/notargets/gospline/readfiles"
	"github.com/notargets/gospline/utils"
)

// Cubic B-spline segment basis, times 6
var bsplineFile = `# uniform cubic B-spline
# rows: constraints, columns: coefficients
1 4 1 0
-3 0 3 0
3 -6 3 0
-1 3 -3 1
`

func writeMatrix(t *testing.T, fn string, header string, M utils.Matrix) {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(header)
	nr, _ := M.Dims()
	for i := 0; i < nr; i++ {
		for j, val := range M.Row(i) {
			if j != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", val)
		}
		sb.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(fn, []byte(sb.String()), 0644))
}

// blockDiag repeats the 16x16 Hermite constraint matrix n times along the diagonal
func blockDiag(n int) utils.Matrix {
	var (
		A = bicubic.ConstraintMatrix()
		M = utils.NewMatrix(16*n, 16*n)
	)
	for b := 0; b < n; b++ {
		for i := 0; i < 16; i++ {
			for j := 0; j < 16; j++ {
				M.Set(16*b+i, 16*b+j, A.At(i, j))
			}
		}
	}
	return M
}

func TestLoadMatrix(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "bspline.txt")
	require.NoError(t, os.WriteFile(fn, []byte(bsplineFile), 0644))
	A, err := LoadMatrix(fn)
	require.NoError(t, err)
	nr, nc := A.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, []float64{-3, 0, 3, 0}, A.Row(1))

	_, err = LoadMatrix(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, os.WriteFile(fn, []byte("1 2\n3\n"), 0644))
	_, err = LoadMatrix(fn)
	assert.True(t, errors.Is(err, readfiles.ErrParse))

	require.NoError(t, os.WriteFile(fn, []byte("# only comments\n"), 0644))
	_, err = LoadMatrix(fn)
	assert.Error(t, err)
}

func TestInvert(t *testing.T) {
	{
		A := blockDiag(1)
		Ai, err := Invert(A)
		require.NoError(t, err)
		assert.True(t, A.Mul(Ai).EqualApprox(utils.NewIdentity(16), utils.NODETOL))
	}
	{
		_, err := Invert(utils.NewMatrix(2, 3))
		assert.True(t, errors.Is(err, ErrNotSquare))
		_, err = Invert(utils.NewMatrix(2, 2, []float64{1, 2, 2, 4}))
		assert.True(t, errors.Is(err, ErrSingular))
	}
}

func TestPrint(t *testing.T) {
	{
		var buf bytes.Buffer
		M := utils.NewMatrix(2, 3, []float64{
			0.9999999999, -2, 3.4,
			-0.5000001, 12, 0,
		})
		require.NoError(t, Print(&buf, M, PrintOptions{Width: 2}))
		assert.Equal(t, " 1, -2,  3,\n-1, 12,  0,\n", buf.String())
	}
	{
		var buf bytes.Buffer
		M := utils.NewMatrix(1, 4, []float64{1, 2, 3, 4})
		require.NoError(t, Print(&buf, M, PrintOptions{Width: 3, Split: 2}))
		assert.Equal(t, "  1,   2,\n  3,   4,\n", buf.String())
	}
	{ // Printed values are the rounded inverse
		var buf bytes.Buffer
		Ai, err := Invert(blockDiag(1))
		require.NoError(t, err)
		require.NoError(t, Print(&buf, Ai, BSpline.PrintOptions))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 16)
		for i, line := range lines {
			fields := strings.Fields(line)
			require.Len(t, fields, 16)
			for j, f := range fields {
				var val int
				_, err = fmt.Sscanf(f, "%d,", &val)
				require.NoError(t, err)
				assert.Equal(t, int(math.Round(Ai.At(i, j))), val)
			}
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	{
		require.NoError(t, os.WriteFile(filepath.Join(dir, BSpline.File), []byte(bsplineFile), 0644))
		var buf bytes.Buffer
		Ai, err := Run(BSpline, dir, &buf)
		require.NoError(t, err)
		A, err := LoadMatrix(filepath.Join(dir, BSpline.File))
		require.NoError(t, err)
		assert.True(t, A.Mul(Ai).EqualApprox(utils.NewIdentity(4), 1.e-12))
		assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
	}
	{ // 64 columns print as two 32 wide lines per row
		writeMatrix(t, filepath.Join(dir, TSpline.File), "# T-spline constraints\n", blockDiag(4))
		var buf bytes.Buffer
		Ai, err := Run(TSpline, dir, &buf)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 128)
		for k, line := range lines {
			fields := strings.Fields(line)
			require.Len(t, fields, 32)
			i, off := k/2, 32*(k%2)
			for j, f := range fields {
				assert.Equal(t, fmt.Sprintf("%d,", int(math.Round(Ai.At(i, off+j)))), f)
			}
		}
	}
	{
		_, err := Run(BSpline, t.TempDir(), &bytes.Buffer{})
		assert.True(t, errors.Is(err, fs.ErrNotExist))

		sdir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(sdir, BSpline.File), []byte("1 2\n2 4\n"), 0644))
		var buf bytes.Buffer
		_, err = Run(BSpline, sdir, &buf)
		assert.True(t, errors.Is(err, ErrSingular))
		assert.Empty(t, buf.String())
	}
}
