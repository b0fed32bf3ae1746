// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("synth: model is nil")

	// ErrEmptyModel indicates a model without constructs.
	ErrEmptyModel = errors.New("synth: model has no constructs")

	// ErrInvalidSampleSize indicates a non-positive row count.
	ErrInvalidSampleSize = errors.New("synth: sample size must be > 0")

	// ErrNumericDomain indicates a skew/kurtosis pair outside the domain of
	// the power-transform approximation (1 - c² - d² < 0).
	ErrNumericDomain = errors.New("synth: skewness/kurtosis outside power-transform domain")
)

// synthErrorf tags err with the failing operation.
func synthErrorf(op string, err error) error {
	return fmt.Errorf("synth.%s: %w", op, err)
}
