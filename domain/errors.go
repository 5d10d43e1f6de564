package domain

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned when a parameter lies outside the
	// support of the requested distribution.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrChartNotFound is returned when a stored chart id is unknown or expired.
	ErrChartNotFound = errors.New("chart not found")
)
