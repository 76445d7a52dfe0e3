package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file for the bicubic demo
type BicubicParameters struct {
	Title  string  `json:"Title"`
	Rows   int     `json:"Rows"`   // sample grid rows
	Cols   int     `json:"Cols"`   // sample grid columns
	Refine int     `json:"Refine"` // evaluation points per grid cell
	Seed   int64   `json:"Seed"`
	Output string  `json:"Output"` // image file prefix
	Size   float64 `json:"Size"`   // image edge length, inches
}

func NewBicubicParameters() *BicubicParameters {
	return &BicubicParameters{
		Title:  "Bicubic Hermite patch",
		Rows:   5,
		Cols:   5,
		Refine: 10,
		Seed:   1,
		Output: "bicubic",
		Size:   4,
	}
}

// Parse overlays the YAML document on the receiver, fields absent from the
// document keep their current values.
func (ip *BicubicParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.Validate()
}

func (ip *BicubicParameters) Validate() error {
	switch {
	case ip.Rows < 1 || ip.Cols < 1:
		return fmt.Errorf("grid dimensions must be positive, have %d x %d", ip.Rows, ip.Cols)
	case ip.Refine < 1:
		return fmt.Errorf("refinement must be positive, have %d", ip.Refine)
	case ip.Size <= 0:
		return fmt.Errorf("image size must be positive, have %v", ip.Size)
	}
	return nil
}

// EvalDims returns the refined lattice used for evaluation and its spacing.
// The lattice covers rows 0..Rows-1, the last cell, which wraps onto row 0,
// is left out unless the grid has a single row (or column).
func (ip *BicubicParameters) EvalDims() (nr, nc int, step float64) {
	span := func(n int) int {
		if n == 1 {
			return ip.Refine
		}
		return (n - 1) * ip.Refine
	}
	return span(ip.Rows), span(ip.Cols), 1. / float64(ip.Refine)
}

func (ip *BicubicParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d x %d]\t\t\t= Sample Grid\n", ip.Rows, ip.Cols)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Refinement\n", ip.Refine)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Seed\n", ip.Seed)
	fmt.Fprintf(w, "[%s]\t\t\t= Output\n", ip.Output)
}
