package bicubic

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gospline/utils"
)

// gridXYZ presents a Matrix as a plotter.GridXYZ, column j along X and row i
// along Y.
type gridXYZ struct {
	M utils.Matrix
}

func (g gridXYZ) Dims() (c, r int) {
	r, c = g.M.Dims()
	return c, r
}
func (g gridXYZ) Z(c, r int) float64 { return g.M.At(r, c) }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }

var _ plotter.GridXYZ = gridXYZ{}

// SaveHeatMap renders M as a heat map image, the format follows the file
// extension (png, svg, pdf, ...).
func SaveHeatMap(M utils.Matrix, title, filename string, size vg.Length) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "j"
	p.Y.Label.Text = "i"
	hm := plotter.NewHeatMap(gridXYZ{M}, palette.Heat(32, 1))
	p.Add(hm)
	if err = p.Save(size, size, filename); err != nil {
		return fmt.Errorf("unable to save %s: %w", filename, err)
	}
	return
}
