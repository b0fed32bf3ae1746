// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
)

// column is either numeric (labels == nil) or a label column (numeric == nil).
type column struct {
	numeric []float64
	labels  []string
}

// Table is an ordered collection of equally long columns.
type Table struct {
	rows  int
	names []string
	cols  map[string]*column
}

// New returns an empty table whose columns must all have rows entries.
func New(rows int) *Table {
	if rows < 0 {
		rows = 0
	}
	return &Table{rows: rows, cols: make(map[string]*column)}
}

// Len returns the row count.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// Has reports whether the table holds a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// IsNumeric reports whether name is a numeric column.
func (t *Table) IsNumeric(name string) bool {
	c, ok := t.cols[name]
	return ok && c.labels == nil
}

func (t *Table) add(name string, c *column, n int) error {
	if _, dup := t.cols[name]; dup {
		return fmt.Errorf("%w %q", ErrDuplicateColumn, name)
	}
	if n != t.rows {
		return fmt.Errorf("%w: %q has %d values, table has %d rows", ErrLengthMismatch, name, n, t.rows)
	}
	t.names = append(t.names, name)
	t.cols[name] = c
	return nil
}

// AddNumeric appends a numeric column. The table takes ownership of values.
//
// Errors: ErrDuplicateColumn, ErrLengthMismatch.
func (t *Table) AddNumeric(name string, values []float64) error {
	if values == nil {
		values = []float64{}
	}
	return t.add(name, &column{numeric: values}, len(values))
}

// AddLabels appends a label column. The table takes ownership of values.
//
// Errors: ErrDuplicateColumn, ErrLengthMismatch.
func (t *Table) AddLabels(name string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return t.add(name, &column{labels: values}, len(values))
}

// Numeric returns the backing slice of a numeric column. Callers must not
// modify it.
//
// Errors: ErrUnknownColumn, ErrNotNumeric.
func (t *Table) Numeric(name string) ([]float64, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	if c.labels != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	return c.numeric, nil
}

// Labels returns the values of any column as strings. Numeric cells are
// formatted compactly; NaN becomes the empty string.
//
// Errors: ErrUnknownColumn.
func (t *Table) Labels(name string) ([]string, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	if c.labels != nil {
		return c.labels, nil
	}
	out := make([]string, len(c.numeric))
	for i, v := range c.numeric {
		out[i] = formatFloat(v)
	}
	return out, nil
}

// cell returns the JSON-ready value of row i in column name: float64,
// string, or nil for a missing numeric value.
func (t *Table) cell(name string, i int) any {
	c := t.cols[name]
	if c.labels != nil {
		return c.labels[i]
	}
	v := c.numeric[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// Record returns row i as a column → value map (nil for missing numerics).
func (t *Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.names))
	for _, name := range t.names {
		rec[name] = t.cell(name, i)
	}
	return rec
}
