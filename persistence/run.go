package persistence

import (
	"fmt"
	"os"

	"github.com/notargets/gospline/readfiles"
	"github.com/notargets/gospline/utils"
)

type RunConfig struct {
	Dir    string
	FileID string
	Time   float64
}

type Summary struct {
	Files  FileSet
	Cells  int
	Pairs  int // boundary rows read
	Rows   [Dimensions]int
	Values [Dimensions]int
}

// Run reads <id>.phat.<t>.conan and <id>.alpha.<t>.conan and writes
// <id>.b{0,1,2}.<t>.conan. Any read or parse failure stops the run before an
// output file is written. Outputs are staged under a .tmp suffix and renamed
// only once all three are on disk, so a failed write leaves no output behind.
func Run(cfg RunConfig) (S Summary, err error) {
	var (
		B BoundaryMatrix
		A AlphaTable
		P [Dimensions][][]float64
	)
	if S.Files, err = NewFileSet(cfg.Dir, cfg.FileID, cfg.Time); err != nil {
		return
	}
	utils.Infof("# run: %s -- time: %.4f -- time-str: %s", cfg.FileID, cfg.Time, S.Files.TimeStr)

	if B, err = ReadBoundary(S.Files.Boundary()); err != nil {
		return
	}
	if A, err = ReadAlpha(S.Files.Alpha()); err != nil {
		return
	}
	S.Cells, S.Pairs = A.Len(), B.Len()
	utils.Debugf("%d boundary rows, %d cells", S.Pairs, S.Cells)

	for d := 0; d < Dimensions; d++ {
		if P[d], err = Extract(B, A, d); err != nil {
			err = fmt.Errorf("dimension %d: %w", d, err)
			return
		}
		S.Rows[d], S.Values[d] = len(P[d]), Count(P[d])
	}
	var staged []string
	defer func() {
		if err != nil {
			for _, name := range staged {
				os.Remove(name)
			}
		}
	}()
	for d := 0; d < Dimensions; d++ {
		tmp := S.Files.Output(d) + ".tmp"
		staged = append(staged, tmp)
		if err = readfiles.WriteRowsFile(tmp, P[d]); err != nil {
			return
		}
		utils.Debugf("wrote %d rows to %s", S.Rows[d], tmp)
	}
	for d, tmp := range staged {
		if err = os.Rename(tmp, S.Files.Output(d)); err != nil {
			err = fmt.Errorf("unable to move %s into place: %w", tmp, err)
			return
		}
	}
	return
}
