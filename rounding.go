package money

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// RoundingMode selects the tie-breaking rule applied when a value lies
// exactly halfway between two representable results. The zero value is
// not a valid mode; operations taking a mode reject it with
// [ErrInvalidArgument].
type RoundingMode int

const (
	// RoundHalfUp rounds ties away from zero.
	RoundHalfUp RoundingMode = iota + 1
	// RoundHalfDown rounds ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds ties to the nearest even digit (banker's rounding).
	RoundHalfEven
	// RoundHalfOdd rounds ties to the nearest odd digit.
	RoundHalfOdd
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r RoundingMode) String() string {
	switch r {
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundHalfEven:
		return "half-even"
	case RoundHalfOdd:
		return "half-odd"
	default:
		return "RoundingMode(" + strconv.Itoa(int(r)) + ")"
	}
}

func (r RoundingMode) valid() bool {
	return r >= RoundHalfUp && r <= RoundHalfOdd
}

// roundToScale rounds d to the given number of digits after the decimal
// point using the tie-breaking rule of the mode. Values that are not
// exactly halfway between two results round to the nearest one under
// every mode.
func roundToScale(d decimal.Decimal, scale int, mode RoundingMode) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	rem, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	if rem.IsZero() {
		return t, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	switch c := rem.CmpAbs(half); {
	case c < 0:
		return t, nil
	case c > 0:
		return roundAway(d, t, scale)
	}
	// Exactly halfway.
	switch mode {
	case RoundHalfUp:
		return roundAway(d, t, scale)
	case RoundHalfDown:
		return t, nil
	case RoundHalfEven, RoundHalfOdd:
		even := t.Rescale(scale).Coef()%2 == 0
		if even == (mode == RoundHalfEven) {
			return t, nil
		}
		return roundAway(d, t, scale)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
}

// roundAway moves the truncated value t one unit in the last place
// further from zero, following the sign of the original value d.
func roundAway(d, t decimal.Decimal, scale int) (decimal.Decimal, error) {
	step, err := decimal.New(1, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	if d.IsNeg() {
		t, err = t.Sub(step)
	} else {
		t, err = t.Add(step)
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return t, nil
}
