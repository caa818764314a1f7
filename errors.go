package money

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or operation
	// receives malformed input: an unknown currency code, an unparsable
	// decimal numeral, an unsupported rounding mode, a non-positive
	// number of split parts, or an invalid ratio list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCurrencyMismatch is returned when an operation combines or
	// compares two monetary values denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrOverflow is returned when an arithmetic result, or an
	// intermediate value of an internal computation, does not fit in an
	// int64 number of minor units.
	ErrOverflow = errors.New("amount overflow")
)
