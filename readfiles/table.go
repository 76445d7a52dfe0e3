package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gospline/utils"
)

var ErrParse = errors.New("parse error")

// ParseError reports a malformed line of a whitespace separated table
type ParseError struct {
	File string
	Line int    // 1-based physical line number
	Raw  string // line content without the newline
	Err  error
}

func (e *ParseError) Error() string {
	name := e.File
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v: %q", name, e.Line, e.Err, e.Raw)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

type ReadOptions struct {
	SkipLines     int    // raw lines dropped before parsing starts
	CommentPrefix string // lines starting with this are ignored
	MaxFields     int    // only the first MaxFields fields of a line are kept, 0 keeps all
	Rectangular   bool   // every row must have the same number of fields
	Verbose       bool
}

// Table holds the tokens of a text table, one slice per data line
type Table struct {
	Name  string
	Rows  [][]string
	Lines []int // physical line number of each row
	Raw   []string
}

func ReadTableFile(filename string, opts ReadOptions) (T Table, err error) {
	var (
		file *os.File
	)
	if opts.Verbose {
		utils.Infof("reading ... %s", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}
	defer file.Close()
	if T, err = ReadTable(file, opts); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = filename
		}
		return
	}
	T.Name = filename
	return
}

func ReadTable(r io.Reader, opts ReadOptions) (T Table, err error) {
	var (
		reader = bufio.NewReader(r)
		lineNo int
		width  = -1
	)
	for {
		line, rerr := reader.ReadString('\n')
		if len(line) == 0 && rerr != nil {
			if rerr != io.EOF {
				err = rerr
			}
			return
		}
		lineNo++
		line = strings.TrimRight(line, "\r\n")
		if lineNo <= opts.SkipLines {
			continue
		}
		if opts.CommentPrefix != "" && strings.HasPrefix(line, opts.CommentPrefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if opts.MaxFields > 0 {
			if len(fields) < opts.MaxFields {
				err = &ParseError{Line: lineNo, Raw: line,
					Err: fmt.Errorf("expected at least %d fields, found %d", opts.MaxFields, len(fields))}
				return
			}
			fields = fields[:opts.MaxFields]
		}
		if opts.Rectangular {
			if width < 0 {
				width = len(fields)
			} else if len(fields) != width {
				err = &ParseError{Line: lineNo, Raw: line,
					Err: fmt.Errorf("expected %d fields, found %d", width, len(fields))}
				return
			}
		}
		T.Rows = append(T.Rows, fields)
		T.Lines = append(T.Lines, lineNo)
		T.Raw = append(T.Raw, line)
		if rerr != nil {
			if rerr != io.EOF {
				err = rerr
			}
			return
		}
	}
}

func (T Table) Len() int { return len(T.Rows) }

func (T Table) Floats() (F [][]float64, err error) {
	F = make([][]float64, len(T.Rows))
	for i, row := range T.Rows {
		F[i] = make([]float64, len(row))
		for j, tok := range row {
			if F[i][j], err = strconv.ParseFloat(tok, 64); err != nil {
				err = T.parseError(i, fmt.Errorf("field %d: %q is not a number", j+1, tok))
				return
			}
		}
	}
	return
}

func (T Table) Ints() (I [][]int, err error) {
	I = make([][]int, len(T.Rows))
	for i, row := range T.Rows {
		I[i] = make([]int, len(row))
		for j, tok := range row {
			if I[i][j], err = strconv.Atoi(tok); err != nil {
				err = T.parseError(i, fmt.Errorf("field %d: %q is not an integer", j+1, tok))
				return
			}
		}
	}
	return
}

// Column parses field j of every row as a float
func (T Table) Column(j int) (C []float64, err error) {
	C = make([]float64, len(T.Rows))
	for i, row := range T.Rows {
		if j >= len(row) {
			err = T.parseError(i, fmt.Errorf("missing field %d", j+1))
			return
		}
		if C[i], err = strconv.ParseFloat(row[j], 64); err != nil {
			err = T.parseError(i, fmt.Errorf("field %d: %q is not a number", j+1, row[j]))
			return
		}
		if math.IsNaN(C[i]) || math.IsInf(C[i], 0) {
			err = T.parseError(i, fmt.Errorf("field %d: %q is not finite", j+1, row[j]))
			return
		}
	}
	return
}

func (T Table) parseError(i int, err error) *ParseError {
	return &ParseError{File: T.Name, Line: T.Lines[i], Raw: T.Raw[i], Err: err}
}
