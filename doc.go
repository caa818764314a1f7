/*
Package money implements exact monetary values as integer counts of a
currency's minor unit.

# Representation

The package consists of two main structs: Money and Currency.
A Money value pairs a signed int64 amount of minor units (e.g. cents)
with a Currency.
A Currency describes an alphabetic code, the number of minor units per
major unit (the subunit, e.g. 100 for currencies with 2 fractional
digits), and the number of fractional digits.
Both types are immutable, so values can be shared freely across
goroutines without synchronization.

# Operations

Money supports addition, subtraction, negation, multiplication by a
float factor, percentage extraction, and comparison.
Binary operations require both operands to share the same currency;
mixed currencies are a hard error, never an implicit conversion.
Every operation that can leave the int64 range fails with an overflow
error instead of wrapping.

Allocation operations distribute an amount across several targets
without losing or gaining a single minor unit: Split divides the amount
into a given number of near-equal parts, and Allocate divides it
proportionally to a list of ratios.

# Rounding

Decimal input is converted to minor units in two stages: the numeral is
first rounded to the currency's fraction digits, then the product with
the subunit is rounded to a whole number of minor units, both times
using half-up rounding.
Multiplication and percentage extraction take an explicit rounding
mode; the supported tie-breaking rules are half-up, half-down,
half-to-even, and half-to-odd.
The [decimal] package provides the underlying decimal arithmetic.

# Errors

All failures are reported to the immediate caller as errors wrapping
one of three sentinels: [ErrInvalidArgument] for malformed input,
[ErrCurrencyMismatch] for operations mixing currencies, and
[ErrOverflow] for results outside the representable range.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package money
