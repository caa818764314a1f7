package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Split returns a slice of values that sum up to the original amount,
// ensuring the parts differ by at most one minor unit. The quotient of
// the truncating division amount / parts is the base share; the
// remainder, one minor unit at a time, goes to the leading parts of the
// slice. Negative amounts split symmetrically: the leading parts carry
// the extra negative units.
// See also method [Money.Allocate].
//
// Split returns an error if the number of parts is not a positive
// integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidArgument)
	}
	low := m.amount / int64(parts)
	rem := m.amount % int64(parts)
	step := int64(1)
	if rem < 0 {
		step = -1
		rem = -rem
	}
	res := make([]Money, parts)
	for i := range res {
		u := low
		if int64(i) < rem {
			u += step
		}
		res[i] = Money{curr: m.curr, amount: u}
	}
	return res, nil
}

// Allocate distributes the amount proportionally to the given ratios,
// preserving the total exactly. Each share is the truncated product of
// the amount and the ratio's weight within the total; the leftover
// minor units are handed out one at a time starting from the first
// share, in ratio order. A negative leftover, produced by a negative
// amount, hands out negative units instead, so the totals always
// reconcile.
// See also method [Money.Split].
//
// Allocate returns an error if:
//   - the ratio list is empty;
//   - a ratio is negative, NaN, or infinite;
//   - the sum of the ratios is not positive.
func (m Money) Allocate(ratios ...float64) ([]Money, error) {
	r, err := m.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by ratios %v: %w", m, ratios, err)
	}
	return r, nil
}

func (m Money) allocate(ratios []float64) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: empty ratio list", ErrInvalidArgument)
	}
	total := 0.0
	for _, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return nil, fmt.Errorf("%w: ratio %v", ErrInvalidArgument, r)
		}
		total += r
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: ratios sum to %v", ErrInvalidArgument, total)
	}
	td, err := newDecimalFromFloat(total)
	if err != nil {
		return nil, err
	}
	a, err := decimal.New(m.amount, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
	}

	res := make([]Money, len(ratios))
	rem := m.amount
	for i, r := range ratios {
		rd, err := newDecimalFromFloat(r)
		if err != nil {
			return nil, err
		}
		// The weight is within [0, 1], so the share cannot exceed the
		// amount in magnitude.
		w, err := rd.Quo(td)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		s, err := a.Mul(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		units, _, ok := s.Trunc(0).Int64(0)
		if !ok {
			return nil, fmt.Errorf("%w: share %v does not fit in int64", ErrOverflow, s)
		}
		res[i] = Money{curr: m.curr, amount: units}
		rem -= units
	}

	// Leftover distribution, first share first.
	step := int64(1)
	if rem < 0 {
		step = -1
	}
	for i := 0; rem != 0; i++ {
		res[i%len(res)].amount += step
		rem -= step
	}
	return res, nil
}

// ExtractPercentage treats the amount as already including a percentage
// markup and splits it into the markup part and the remaining subtotal.
// The markup is amount / (100 + percentage) * percentage, rounded to a
// whole number of minor units with the given rounding mode; the
// subtotal is the amount minus the markup, so the two always sum back
// to the original amount.
//
// ExtractPercentage returns an error if:
//   - the percentage is NaN, infinite, or -100 (a zero divisor);
//   - the mode is not one of the supported rounding modes;
//   - an intermediate result does not fit in an int64 number of minor
//     units.
func (m Money) ExtractPercentage(percentage float64, mode RoundingMode) (part, subtotal Money, err error) {
	part, subtotal, err = m.extractPercentage(percentage, mode)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("extracting %v%% from %v: %w", percentage, m, err)
	}
	return part, subtotal, nil
}

func (m Money) extractPercentage(percentage float64, mode RoundingMode) (Money, Money, error) {
	if !mode.valid() {
		return Money{}, Money{}, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
	p, err := newDecimalFromFloat(percentage)
	if err != nil {
		return Money{}, Money{}, err
	}
	hundred, err := decimal.New(100, 0)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	den, err := hundred.Add(p)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	if den.IsZero() {
		return Money{}, Money{}, fmt.Errorf("%w: percentage %v divides by zero", ErrInvalidArgument, percentage)
	}
	a, err := decimal.New(m.amount, 0)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err := a.Quo(den)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err = d.Mul(p)
	if err != nil {
		return Money{}, Money{}, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	d, err = roundToScale(d, 0, mode)
	if err != nil {
		return Money{}, Money{}, err
	}
	units, _, ok := d.Int64(0)
	if !ok {
		return Money{}, Money{}, fmt.Errorf("%w: %v minor units do not fit in int64", ErrOverflow, d)
	}
	rest, ok := subInt64(m.amount, units)
	if !ok {
		return Money{}, Money{}, ErrOverflow
	}
	return Money{curr: m.curr, amount: units}, Money{curr: m.curr, amount: rest}, nil
}
