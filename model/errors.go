// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for model lookups and decoding.
var (
	// ErrUnknownConstruct indicates a path endpoint that names no construct.
	ErrUnknownConstruct = errors.New("model: unknown construct")

	// ErrDuplicateConstruct indicates two constructs sharing a name.
	ErrDuplicateConstruct = errors.New("model: duplicate construct")

	// ErrDuplicateItem indicates an item name used more than once in a model.
	ErrDuplicateItem = errors.New("model: duplicate item")

	// ErrEmptyConstruct indicates a construct without items.
	ErrEmptyConstruct = errors.New("model: construct has no items")

	// ErrUnknownDemographicKind indicates a demographic "type" outside
	// categorical / numerical / ordinal.
	ErrUnknownDemographicKind = errors.New("model: unknown demographic type")

	// ErrUnsupportedFormat indicates a spec file extension we cannot decode.
	ErrUnsupportedFormat = errors.New("model: unsupported spec format")

	// ErrUnknownTemplate indicates a template key not in Templates().
	ErrUnknownTemplate = errors.New("model: unknown template")
)

// unknownConstruct wraps ErrUnknownConstruct with the missing name.
func unknownConstruct(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownConstruct, name)
}

// Issue captures a validation problem with one field of a request.
type Issue struct {
	Field   string
	Message string

	kind error // sentinel for structural issues, nil for range issues
}

// ValidationError aggregates request validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "model: validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the sentinels behind structural issues so callers can use
// errors.Is(err, ErrUnknownConstruct) on a *ValidationError.
func (err *ValidationError) Unwrap() []error {
	if err == nil {
		return nil
	}
	var out []error
	for _, issue := range err.Issues {
		if issue.kind != nil {
			out = append(out, issue.kind)
		}
	}
	return out
}
