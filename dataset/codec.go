// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteJSON writes the table as an array of records whose keys follow
// column order. Missing numeric values are written as null.
func (t *Table) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	keys := make([][]byte, len(t.names))
	for j, name := range t.names {
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[j] = k
	}

	bw.WriteByte('[')
	for i := 0; i < t.rows; i++ {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('{')
		for j, name := range t.names {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.Write(keys[j])
			bw.WriteByte(':')
			switch v := t.cell(name, i).(type) {
			case nil:
				bw.WriteString("null")
			case float64:
				bw.WriteString(formatFloat(v))
			default:
				b, err := json.Marshal(v)
				if err != nil {
					return err
				}
				bw.Write(b)
			}
		}
		bw.WriteByte('}')
	}
	bw.WriteByte(']')
	return bw.Flush()
}

// MarshalJSON renders the table as WriteJSON does.
func (t *Table) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	if err := t.WriteJSON(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// ReadJSON decodes an array of flat records. Columns appear in first-seen
// key order. A column is numeric when every non-null value is a number;
// otherwise it becomes a label column. Absent keys and nulls are missing
// values (NaN / "").
//
// Errors: ErrMalformed for anything but an array of objects with scalar values.
func ReadJSON(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var (
		order []string
		cells = make(map[string]map[int]any)
		rows  int
	)
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			key, _ := tok.(string)
			var v any
			if err = dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			switch v.(type) {
			case nil, json.Number, string, bool:
			default:
				return nil, fmt.Errorf("%w: row %d key %q is not a scalar", ErrMalformed, rows, key)
			}
			col, seen := cells[key]
			if !seen {
				col = make(map[int]any)
				cells[key] = col
				order = append(order, key)
			}
			col[rows] = v
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		rows++
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	t := New(rows)
	for _, name := range order {
		col := cells[name]
		if numeric, ok := jsonNumeric(col, rows); ok {
			if err := t.AddNumeric(name, numeric); err != nil {
				return nil, err
			}
			continue
		}
		labels := make([]string, rows)
		for i := 0; i < rows; i++ {
			switch v := col[i].(type) {
			case string:
				labels[i] = v
			case json.Number:
				labels[i] = v.String()
			case bool:
				labels[i] = strconv.FormatBool(v)
			}
		}
		if err := t.AddLabels(name, labels); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func jsonNumeric(col map[int]any, rows int) ([]float64, bool) {
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		switch v := col[i].(type) {
		case nil:
			out[i] = math.NaN()
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, false
			}
			out[i] = f
		default:
			return nil, false
		}
	}
	return out, true
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformed, want, tok)
	}
	return nil
}

// WriteCSV writes a header row followed by one line per row. Missing
// numeric values are written as empty cells.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}
	cols := make([][]string, len(t.names))
	for j, name := range t.names {
		cols[j], _ = t.Labels(name)
	}
	record := make([]string, len(t.names))
	for i := 0; i < t.rows; i++ {
		for j := range cols {
			record[j] = cols[j][i]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a header row and data rows. A column is numeric when every
// non-empty cell parses as a float; empty cells are then NaN. Other
// columns keep their raw text.
//
// Errors: ErrMalformed for a missing header or ragged rows.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	header, body := all[0], all[1:]

	t := New(len(body))
	for j, name := range header {
		raw := make([]string, len(body))
		for i, rec := range body {
			raw[i] = rec[j]
		}
		if numeric, ok := csvNumeric(raw); ok {
			err = t.AddNumeric(name, numeric)
		} else {
			err = t.AddLabels(name, raw)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func csvNumeric(raw []string) ([]float64, bool) {
	out := make([]float64, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
