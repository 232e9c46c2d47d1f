package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Columns holds the zero-based CSV field indices of the three plotted series.
type Columns struct {
	Height   int
	Thrust   int
	Setpoint int
}

// Column bindings of the two simulation outputs. output.csv carries a leading
// step column; plant.csv carries two leading counters.
var (
	OutputColumns = Columns{Height: 1, Thrust: 2, Setpoint: 3}
	PlantColumns  = Columns{Height: 2, Thrust: 3, Setpoint: 4}
)

// MinFields is the number of fields a row needs to cover every column.
func (c Columns) MinFields() int {
	return max(c.Height, c.Thrust, c.Setpoint) + 1
}

// Validate rejects negative or repeated indices.
func (c Columns) Validate() error {
	idx := []int{c.Height, c.Thrust, c.Setpoint}
	for i, v := range idx {
		if v < 0 {
			return fmt.Errorf("column index %d is negative", v)
		}
		for _, w := range idx[:i] {
			if v == w {
				return fmt.Errorf("column index %d used twice", v)
			}
		}
	}
	return nil
}

func (c Columns) String() string {
	return fmt.Sprintf("%d,%d,%d", c.Height, c.Thrust, c.Setpoint)
}

// ParseColumns parses "h,t,s" into Columns.
func ParseColumns(s string) (Columns, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Columns{}, fmt.Errorf("expected 3 comma-separated column indices, got %q", s)
	}
	var idx [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Columns{}, errors.Wrapf(err, "invalid column index %q", p)
		}
		idx[i] = v
	}
	c := Columns{Height: idx[0], Thrust: idx[1], Setpoint: idx[2]}
	return c, c.Validate()
}

// Series holds the three plotted sequences, one value per CSV row in file order.
type Series struct {
	Height   []float64
	Thrust   []float64
	Setpoint []float64
}

// NewSeries returns an empty Series with room for n rows.
func NewSeries(n int) *Series {
	return &Series{
		Height:   make([]float64, 0, n),
		Thrust:   make([]float64, 0, n),
		Setpoint: make([]float64, 0, n),
	}
}

// Len returns the number of time steps.
func (s *Series) Len() int {
	return len(s.Height)
}

// ErrLengthMismatch reports series of unequal length. The loader never
// produces one, so seeing it means a caller built the Series by hand.
var ErrLengthMismatch = errors.New("series lengths differ")

// Validate checks the equal-length invariant.
func (s *Series) Validate() error {
	if s == nil {
		return errors.New("nil series")
	}
	if len(s.Thrust) != len(s.Height) || len(s.Setpoint) != len(s.Height) {
		return errors.Wrapf(ErrLengthMismatch, "height=%d thrust=%d setpoint=%d",
			len(s.Height), len(s.Thrust), len(s.Setpoint))
	}
	return nil
}

// OpenError reports a missing or unreadable input file.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open CSV file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// RowShapeError reports a row with fewer fields than the columns require.
type RowShapeError struct {
	Line   int // 1-based file line
	Fields int
	Need   int
}

func (e *RowShapeError) Error() string {
	if e.Fields == 0 {
		return fmt.Sprintf("line %d: blank line, need at least %d fields", e.Line, e.Need)
	}
	return fmt.Sprintf("line %d: has %d fields, need at least %d", e.Line, e.Fields, e.Need)
}

// ParseError reports a required field that is not a number.
type ParseError struct {
	Line   int // 1-based file line
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: cannot parse %q as a number", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
