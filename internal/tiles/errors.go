package tiles

import "errors"

var (
	// ErrInputShape is returned when a coordinate pair does not have exactly two elements.
	ErrInputShape = errors.New("invalid input shape")

	// ErrBandNotFound is returned when an explicitly requested band is missing from a catalog item.
	ErrBandNotFound = errors.New("band not found")

	// ErrDateParse is returned when a link does not carry a valid YYYYJJJ acquisition date.
	ErrDateParse = errors.New("invalid acquisition date")

	// ErrInvalidDateRange is returned when a date range cannot be parsed or is inverted.
	ErrInvalidDateRange = errors.New("invalid date range")
)
