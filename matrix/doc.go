// SPDX-License-Identifier: MIT

// Package matrix provides bounds-checked, row-major float64 tables.
//
// tourplan uses matrix.Dense to back the transfer-cost and revenue tables of
// a problem instance (see tsp.Table). The surface is intentionally small:
//
//   - Matrix:           Rows/Cols/At/Set/Clone interface.
//   - Dense:            flat-slice implementation with an unchecked Get for hot paths.
//   - NewDenseFromRows: copy-in constructor from [][]float64.
//   - ValidateFinite:   reject NaN/±Inf cells before a table is used for scoring.
//
// Errors (sentinel): ErrInvalidDimensions, ErrIndexOutOfBounds, ErrNaNInf, ErrNilMatrix.
package matrix
