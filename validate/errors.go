// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates a nil table.
	ErrNilTable = errors.New("validate: table is nil")

	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("validate: model is nil")
)

func validateErrorf(op string, err error) error {
	return fmt.Errorf("validate.%s: %w", op, err)
}
