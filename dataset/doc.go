// SPDX-License-Identifier: MIT

// Package dataset holds the in-memory survey table exchanged between the
// generator and the validator.
//
// A Table is an ordered set of equally long columns. A column is either
// numeric ([]float64, NaN marks a missing value) or a label column
// ([]string). Column order is insertion order and is preserved by every
// reader and writer: JSON records (WriteJSON / ReadJSON) and CSV
// (WriteCSV / ReadCSV).
//
// Tables are not safe for concurrent mutation; concurrent readers are fine.
package dataset
