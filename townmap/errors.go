// SPDX-License-Identifier: MIT

package townmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported while loading or querying a map.
var (
	// ErrEmptyDocument indicates the input held no YAML document.
	ErrEmptyDocument = errors.New("townmap: empty map document")

	// ErrNoLocations indicates a map without a single location.
	ErrNoLocations = errors.New("townmap: map declares no locations")

	// ErrEmptyName indicates a location without a name.
	ErrEmptyName = errors.New("townmap: location name is empty")

	// ErrDuplicateLocation indicates two locations sharing a name.
	ErrDuplicateLocation = errors.New("townmap: duplicate location")

	// ErrBadCoordinate indicates a missing or malformed `at` field.
	ErrBadCoordinate = errors.New("townmap: coordinate must be [x, y]")

	// ErrUndefinedTarget indicates a road leading to an undeclared location.
	ErrUndefinedTarget = errors.New("townmap: road leads to undefined location")

	// ErrSelfRoad indicates a road from a location to itself.
	ErrSelfRoad = errors.New("townmap: road loops back to its own location")

	// ErrMissingCost indicates a road declared without a cost.
	ErrMissingCost = errors.New("townmap: road has no cost")

	// ErrBadCost indicates a negative or non-finite road cost.
	ErrBadCost = errors.New("townmap: road cost must be finite and non-negative")

	// ErrDuplicateRoad indicates the same one-way road declared twice.
	ErrDuplicateRoad = errors.New("townmap: duplicate road")

	// ErrUnknownLocation indicates a query for a location the map lacks.
	ErrUnknownLocation = errors.New("townmap: unknown location")
)

// ValidationError collects every problem found in a map document.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d map problems:", len(e.Problems))
	for i, p := range e.Problems {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, p.Error())
	}

	return b.String()
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// Problems returns the individual problems if err is a *ValidationError.
// Otherwise returns nil.
func Problems(err error) []error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Problems
	}

	return nil
}
