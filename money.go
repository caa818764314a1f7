package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Money type represents an exact monetary value: a signed amount of
// minor units (e.g. cents) paired with a [Currency].
// Its zero value corresponds to "XXX 0", where XXX indicates an unknown
// currency.
// Money is immutable and designed to be safe for concurrent use by
// multiple goroutines; every operation returns a new value.
type Money struct {
	curr   Currency
	amount int64
}

// NewMoney returns a monetary value of the given number of minor units.
// The currency code is resolved against the built-in registry.
//
// NewMoney returns an error if the currency code is not valid.
func NewMoney(curr string, amount int64) (Money, error) {
	c, err := ParseCurrency(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return Money{curr: c, amount: amount}, nil
}

// MustNewMoney is like [NewMoney] but panics if the value cannot be
// constructed. It simplifies safe initialization of global variables
// holding monetary values.
func MustNewMoney(curr string, amount int64) Money {
	m, err := NewMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%q, %v) failed: %v", curr, amount, err))
	}
	return m
}

// NewMoneyFromCurrency returns a monetary value of the given number of
// minor units in the given currency. No registry lookup is performed.
func NewMoneyFromCurrency(curr Currency, amount int64) Money {
	return Money{curr: curr, amount: amount}
}

// ParseMoney converts a currency code and a decimal numeral to a
// monetary value. The numeral is converted to minor units in two
// stages: it is first rounded to the currency's fraction digits using
// half-up rounding, then multiplied by the currency's subunit, and the
// product is rounded to a whole number of minor units, again half-up.
// Excess precision in the input is therefore rounded away at the digit
// stage, before the subunit multiplication.
//
// ParseMoney returns an error if:
//   - the currency code is not valid;
//   - the numeral is not a valid decimal;
//   - the result does not fit in an int64 number of minor units.
func ParseMoney(curr, value string) (Money, error) {
	c, err := ParseCurrency(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return ParseMoneyFromCurrency(c, value)
}

// ParseMoneyFromCurrency is like [ParseMoney] but takes an already
// constructed currency, for example one built with [NewCurrency].
func ParseMoneyFromCurrency(curr Currency, value string) (Money, error) {
	d, err := decimal.Parse(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: parsing amount %q: %v", ErrInvalidArgument, value, err)
	}
	d, err = roundToScale(d, curr.FractionDigits(), RoundHalfUp)
	if err != nil {
		return Money{}, fmt.Errorf("rounding amount: %w", err)
	}
	su, err := decimal.New(curr.SubUnit(), 0)
	if err != nil {
		return Money{}, fmt.Errorf("%w: subunit %v: %v", ErrInvalidArgument, curr.SubUnit(), err)
	}
	d, err = d.Mul(su)
	if err != nil {
		return Money{}, fmt.Errorf("%w: converting to minor units: %v", ErrOverflow, err)
	}
	d, err = roundToScale(d, 0, RoundHalfUp)
	if err != nil {
		return Money{}, fmt.Errorf("rounding minor units: %w", err)
	}
	units, _, ok := d.Int64(0)
	if !ok {
		return Money{}, fmt.Errorf("%w: %v minor units do not fit in int64", ErrOverflow, d)
	}
	return Money{curr: curr, amount: units}, nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings
// cannot be parsed. It simplifies safe initialization of global
// variables holding monetary values.
func MustParseMoney(curr, value string) Money {
	m, err := ParseMoney(curr, value)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, value, err))
	}
	return m
}

// Amount returns the value in minor units of the currency.
func (m Money) Amount() int64 {
	return m.amount
}

// Curr returns the currency of the value.
func (m Money) Curr() Currency {
	return m.curr
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.amount < 0:
		return -1
	case m.amount > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.amount < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.amount > 0
}

// SameCurr returns true if values are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Add returns the sum of values m and b.
//
// Add returns an error if:
//   - the values are denominated in different currencies;
//   - the sum does not fit in an int64 number of minor units.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	sum, ok := addInt64(m.amount, b.amount)
	if !ok {
		return Money{}, ErrOverflow
	}
	return Money{curr: m.curr, amount: sum}, nil
}

// Sub returns the difference between values m and b.
//
// Sub returns an error if:
//   - the values are denominated in different currencies;
//   - the difference does not fit in an int64 number of minor units.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	diff, ok := subInt64(m.amount, b.amount)
	if !ok {
		return Money{}, ErrOverflow
	}
	return Money{curr: m.curr, amount: diff}, nil
}

// Neg returns a value with the opposite sign.
//
// Neg returns an error if the amount is the most negative representable
// value, whose negation does not fit in an int64.
func (m Money) Neg() (Money, error) {
	if m.amount == math.MinInt64 {
		return Money{}, fmt.Errorf("computing [-%v]: %w", m, ErrOverflow)
	}
	return Money{curr: m.curr, amount: -m.amount}, nil
}

// Abs returns the absolute value.
//
// Abs returns an error if the amount is the most negative representable
// value, whose magnitude does not fit in an int64.
func (m Money) Abs() (Money, error) {
	if m.amount == math.MinInt64 {
		return Money{}, fmt.Errorf("computing [abs(%v)]: %w", m, ErrOverflow)
	}
	if m.amount < 0 {
		return Money{curr: m.curr, amount: -m.amount}, nil
	}
	return m, nil
}

// Mul returns the product of value m and factor e, rounded to a whole
// number of minor units using the given rounding mode.
//
// Mul returns an error if:
//   - the factor is NaN or infinite;
//   - the mode is not one of the supported rounding modes;
//   - the product does not fit in an int64 number of minor units.
func (m Money) Mul(e float64, mode RoundingMode) (Money, error) {
	c, err := m.mul(e, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) mul(e float64, mode RoundingMode) (Money, error) {
	if !mode.valid() {
		return Money{}, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
	f, err := newDecimalFromFloat(e)
	if err != nil {
		return Money{}, err
	}
	a, err := decimal.New(m.amount, 0)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err := a.Mul(f)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err = roundToScale(d, 0, mode)
	if err != nil {
		return Money{}, err
	}
	units, _, ok := d.Int64(0)
	if !ok {
		return Money{}, fmt.Errorf("%w: %v minor units do not fit in int64", ErrOverflow, d)
	}
	return Money{curr: m.curr, amount: units}, nil
}

// Cmp compares values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the values are denominated in different
// currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	switch {
	case m.amount < b.amount:
		return -1, nil
	case m.amount > b.amount:
		return 1, nil
	}
	return 0, nil
}

// Equals returns true if the values are numerically equal.
// Equality across currencies is an error, not false.
func (m Money) Equals(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// GreaterThan returns true if m is numerically greater than b.
//
// GreaterThan returns an error if the values are denominated in
// different currencies.
func (m Money) GreaterThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterThanOrEqual returns true if m is numerically greater than or
// equal to b.
//
// GreaterThanOrEqual returns an error if the values are denominated in
// different currencies.
func (m Money) GreaterThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// LessThan returns true if m is numerically less than b.
//
// LessThan returns an error if the values are denominated in different
// currencies.
func (m Money) LessThan(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessThanOrEqual returns true if m is numerically less than or equal
// to b.
//
// LessThanOrEqual returns an error if the values are denominated in
// different currencies.
func (m Money) LessThanOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Min returns the smaller value.
//
// Min returns an error if the values are denominated in different
// currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger value.
//
// Max returns an error if the values are denominated in different
// currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value, e.g. "USD 12.34". The amount is rendered
// in major units with the currency's fraction digits. The rendering is
// for display and error context only; use [Money.MarshalJSON] for the
// interchange projection.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	su := m.curr.subunit
	if su <= 0 {
		su = 1
	}
	a, err := decimal.New(m.amount, 0)
	if err != nil {
		return fmt.Sprintf("%s %v", m.curr, m.amount)
	}
	d, err := decimal.New(su, 0)
	if err != nil {
		return fmt.Sprintf("%s %v", m.curr, m.amount)
	}
	q, err := a.Quo(d)
	if err != nil {
		return fmt.Sprintf("%s %v", m.curr, m.amount)
	}
	return m.curr.String() + " " + q.Rescale(m.curr.digits).String()
}

// MarshalJSON implements the [json.Marshaler] interface.
// The projection carries exactly two fields, the amount in minor units
// and the currency code; fraction-digit metadata does not travel and
// must be recovered from the currency registry by the consumer.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}{m.amount, m.curr.String()})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The currency code is resolved against the built-in registry.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	c, err := ParseCurrency(aux.Currency)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	m.curr = c
	m.amount = aux.Amount
	return nil
}

// newDecimalFromFloat converts a float to a decimal, rejecting the
// special values that have no decimal representation. The conversion
// goes through the shortest decimal string that round-trips the float.
func newDecimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidArgument, f)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: converting float %v: %v", ErrOverflow, f, err)
	}
	return d, nil
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt64(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}
