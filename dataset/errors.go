// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrDuplicateColumn indicates a column name added twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrLengthMismatch indicates a column whose length differs from the table's row count.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrUnknownColumn indicates a lookup of a column that does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrNotNumeric indicates a numeric lookup of a label column.
	ErrNotNumeric = errors.New("dataset: column is not numeric")

	// ErrMalformed indicates input that is not a table (bad JSON shape, ragged CSV).
	ErrMalformed = errors.New("dataset: malformed input")
)
