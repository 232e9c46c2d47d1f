package parser

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadSeries reads the CSV file at path and extracts the three series at cols.
// Every row is data; there is no header. The first bad row aborts the load.
func LoadSeries(path string, cols Columns) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer file.Close()

	s, err := ReadSeries(file, cols)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return s, nil
}

// ReadSeries is LoadSeries over an already opened reader. Blank lines between
// rows are row-shape errors, since dropping them would shift later time steps.
// Blank lines after the last row are ignored.
func ReadSeries(r io.Reader, cols Columns) (*Series, error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Rows are only required to reach the highest column
	reader.LazyQuotes = true

	need := cols.MinFields()
	s := NewSeries(0)
	lastLine := 0 // last file line consumed by the previous record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV record after line %d", lastLine)
		}

		line, _ := reader.FieldPos(0)
		if line > lastLine+1 {
			return nil, &RowShapeError{Line: lastLine + 1, Fields: 0, Need: need}
		}
		lastLine = recordEndLine(reader, record)

		if len(record) < need {
			return nil, &RowShapeError{Line: line, Fields: len(record), Need: need}
		}

		h, err := parseField(record, line, cols.Height)
		if err != nil {
			return nil, err
		}
		th, err := parseField(record, line, cols.Thrust)
		if err != nil {
			return nil, err
		}
		sp, err := parseField(record, line, cols.Setpoint)
		if err != nil {
			return nil, err
		}

		s.Height = append(s.Height, h)
		s.Thrust = append(s.Thrust, th)
		s.Setpoint = append(s.Setpoint, sp)
	}
	return s, nil
}

// recordEndLine returns the file line the record ends on. Quoted fields may
// span lines, so the newlines inside the last field are counted.
func recordEndLine(reader *csv.Reader, record []string) int {
	last := len(record) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(record[last], "\n")
}

func parseField(record []string, line, col int) (float64, error) {
	raw := record[col]
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ParseError{Line: line, Column: col, Value: raw, Err: err}
	}
	return v, nil
}
