// SPDX-License-Identifier: MIT
// Package matrix: shared validators.

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil returns ErrNilMatrix for a nil interface or nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateFinite scans m and rejects any NaN or ±Inf entry.
// The first offending cell is reported in the wrapped error.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("cell (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}
