// SPDX-License-Identifier: MIT

package pmc

import "errors"

var (
	// ErrBadPointCount is returned when the number of points is not a positive multiple of 4.
	ErrBadPointCount = errors.New("pmc: number of points must be a positive multiple of 4")

	// ErrBadMatching is returned when the pairs do not partition the points into pairs.
	ErrBadMatching = errors.New("pmc: pairs do not form a matching")

	// ErrPointOutOfRange is returned when a point or pair index is outside its valid range.
	ErrPointOutOfRange = errors.New("pmc: point out of range")

	// ErrTooLarge is returned when the matching has more pairs than an idempotent bitmask holds.
	ErrTooLarge = errors.New("pmc: too many pairs")

	// ErrBadMove is returned for a chord with a non-upward move or repeated starts/ends.
	ErrBadMove = errors.New("pmc: invalid chord")

	// ErrIncompatibleIdem indicates a chord that cannot start at the given idempotent.
	ErrIncompatibleIdem = errors.New("pmc: chord incompatible with idempotent")
)
