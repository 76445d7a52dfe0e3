package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteRows writes one row per line, values in %.18e separated by a single
// space, with no header. An empty row set produces an empty file.
func WriteRows(w io.Writer, rows [][]float64) (err error) {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for j, val := range row {
			if j != 0 {
				if err = bw.WriteByte(' '); err != nil {
					return
				}
			}
			if _, err = bw.WriteString(strconv.FormatFloat(val, 'e', 18, 64)); err != nil {
				return
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteRowsFile(filename string, rows [][]float64) (err error) {
	var (
		file *os.File
	)
	if file, err = os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666); err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	if err = WriteRows(file, rows); err != nil {
		file.Close()
		return fmt.Errorf("unable to write file %s: %w", filename, err)
	}
	return file.Close()
}
