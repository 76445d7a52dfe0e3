package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sim.phat.01000.conan"), []byte("2\n0 2\n1 2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sim.alpha.01000.conan"), []byte("# a t\n0 0\n0.5 1\n1.5 1\n"), 0644))

	_, err := execute(t, "run", "sim", "0.1", "--dir", dir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "sim.b0.01000.conan"))
	require.NoError(t, err)
	assert.Equal(t, "0.000000000000000000e+00 1.500000000000000000e+00\n", string(data))
	data, err = os.ReadFile(filepath.Join(dir, "sim.b1.01000.conan"))
	require.NoError(t, err)
	assert.Equal(t, "5.000000000000000000e-01 1.500000000000000000e+00\n", string(data))

	_, err = execute(t, "run", "sim", "soon", "--dir", dir)
	assert.Error(t, err)
	_, err = execute(t, "run", "sim", "--dir", dir)
	assert.Error(t, err)
	_, err = execute(t, "run", "other", "0.1", "--dir", dir)
	assert.Error(t, err)
}

func TestInvertCommands(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bspline.txt"), []byte("# basis\n2 0\n0 4\n"), 0644))

	out, err := execute(t, "bspline", "--dir", dir)
	require.NoError(t, err)
	// 0.5 rounds away from zero
	assert.Equal(t, " 1,  0,\n 0,  0,\n", out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaled.txt"), []byte("0.5 0\n0 0.25\n"), 0644))
	out, err = execute(t, "bspline", "--dir", dir, "--file", "scaled.txt")
	require.NoError(t, err)
	assert.Equal(t, " 2,  0,\n 0,  4,\n", out)

	out, err = execute(t, "invert", filepath.Join(dir, "scaled.txt"), "--width", "3", "--split", "1")
	require.NoError(t, err)
	assert.Equal(t, "  2,\n  0,\n  0,\n  4,\n", out)

	var sb strings.Builder
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			if i == j {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tspline.txt"), []byte(sb.String()), 0644))
	out, err = execute(t, "tspline", "--dir", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 128)
	assert.True(t, strings.HasPrefix(lines[0], "  1,   0,"))
	assert.Len(t, strings.Fields(lines[1]), 32)

	_, err = execute(t, "tspline", "--dir", t.TempDir())
	assert.Error(t, err)
}

func TestBicubicCommand(t *testing.T) {
	dir := t.TempDir()
	ic := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(ic, []byte("Title: demo\nRows: 4\nCols: 3\nRefine: 4\nSize: 2\n"), 0644))
	_, err := execute(t, "bicubic", "--dir", dir, "-I", ic, "-o", "demo")
	require.NoError(t, err)
	for _, fn := range []string{"demo_I.png", "demo_J.png"} {
		info, err := os.Stat(filepath.Join(dir, fn))
		require.NoError(t, err)
		assert.True(t, info.Size() > 0)
	}

	require.NoError(t, os.WriteFile(ic, []byte("Rows: 0\n"), 0644))
	_, err = execute(t, "bicubic", "--dir", dir, "-I", ic)
	assert.Error(t, err)
}
