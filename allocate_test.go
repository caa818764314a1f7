package money

import (
	"errors"
	"math"
	"testing"
)

func TestMoney_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m     string
			d     int64
			parts int
			want  []int64
		}{
			{"USD", 101, 3, []int64{34, 34, 33}},
			{"USD", 100, 3, []int64{34, 33, 33}},
			{"USD", 101, 1, []int64{101}},
			{"USD", 101, 2, []int64{51, 50}},
			{"USD", 101, 4, []int64{26, 25, 25, 25}},
			{"USD", 0, 4, []int64{0, 0, 0, 0}},
			{"USD", 1, 3, []int64{1, 0, 0}},
			{"USD", 2, 3, []int64{1, 1, 0}},

			{"USD", -101, 3, []int64{-34, -34, -33}},
			{"USD", -1, 3, []int64{-1, 0, 0}},

			{"JPY", 7, 2, []int64{4, 3}},
		}
		for _, tt := range tests {
			a := MustNewMoney(tt.m, tt.d)
			got, err := a.Split(tt.parts)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", a, tt.parts, err)
				continue
			}
			sum := int64(0)
			for i := range got {
				sum += got[i].Amount()
				if got[i].Amount() != tt.want[i] {
					t.Errorf("%q.Split(%v)[%v] = %v, want %v", a, tt.parts, i, got[i].Amount(), tt.want[i])
				}
			}
			if sum != tt.d {
				t.Errorf("%q.Split(%v) sums to %v, want %v", a, tt.parts, sum, tt.d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustNewMoney("USD", 1)
		for _, parts := range []int{0, -1} {
			_, err := a.Split(parts)
			if err == nil {
				t.Errorf("%q.Split(%v) did not fail", a, parts)
				continue
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%q.Split(%v) = %v, want ErrInvalidArgument", a, parts, err)
			}
		}
	})
}

func TestMoney_Allocate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m      string
			d      int64
			ratios []float64
			want   []int64
		}{
			{"USD", 101, []float64{1, 1, 1}, []int64{34, 34, 33}},
			{"USD", 100, []float64{3, 7}, []int64{30, 70}},
			{"USD", 101, []float64{1, 1}, []int64{51, 50}},
			{"USD", 5, []float64{3, 7}, []int64{2, 3}},
			{"USD", 102, []float64{1, 1, 2}, []int64{26, 25, 51}},
			{"USD", 101, []float64{0, 1}, []int64{0, 101}},
			{"USD", 0, []float64{1, 2}, []int64{0, 0}},
			{"USD", 101, []float64{0.5, 0.5}, []int64{51, 50}},

			{"USD", -101, []float64{1, 1, 1}, []int64{-34, -34, -33}},
			{"USD", -100, []float64{3, 7}, []int64{-30, -70}},
		}
		for _, tt := range tests {
			a := MustNewMoney(tt.m, tt.d)
			got, err := a.Allocate(tt.ratios...)
			if err != nil {
				t.Errorf("%q.Allocate(%v) failed: %v", a, tt.ratios, err)
				continue
			}
			sum := int64(0)
			for i := range got {
				sum += got[i].Amount()
				if got[i].Amount() != tt.want[i] {
					t.Errorf("%q.Allocate(%v)[%v] = %v, want %v", a, tt.ratios, i, got[i].Amount(), tt.want[i])
				}
			}
			if sum != tt.d {
				t.Errorf("%q.Allocate(%v) sums to %v, want %v", a, tt.ratios, sum, tt.d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]float64{
			"empty":    {},
			"negative": {1, -1},
			"zero sum": {0, 0},
			"nan":      {1, math.NaN()},
			"inf":      {1, math.Inf(1)},
		}
		a := MustNewMoney("USD", 101)
		for name, ratios := range tests {
			_, err := a.Allocate(ratios...)
			if err == nil {
				t.Errorf("%s: %q.Allocate(%v) did not fail", name, a, ratios)
				continue
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%s: %q.Allocate(%v) = %v, want ErrInvalidArgument", name, a, ratios, err)
			}
		}
	})
}

func TestMoney_ExtractPercentage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d        int64
			pct      float64
			mode     RoundingMode
			wantPart int64
		}{
			{12100, 21, RoundHalfUp, 2100},
			{12100, 21, RoundHalfEven, 2100},
			{1000, 10, RoundHalfUp, 91},
			{1100, 10, RoundHalfUp, 100},
			{0, 21, RoundHalfUp, 0},
			{-12100, 21, RoundHalfUp, -2100},

			// 3 / 200 * 100 = 1.5, a tie
			{3, 100, RoundHalfUp, 2},
			{3, 100, RoundHalfDown, 1},
			{3, 100, RoundHalfEven, 2},
			{3, 100, RoundHalfOdd, 1},
		}
		for _, tt := range tests {
			a := MustNewMoney("USD", tt.d)
			part, subtotal, err := a.ExtractPercentage(tt.pct, tt.mode)
			if err != nil {
				t.Errorf("%q.ExtractPercentage(%v, %v) failed: %v", a, tt.pct, tt.mode, err)
				continue
			}
			if part.Amount() != tt.wantPart {
				t.Errorf("%q.ExtractPercentage(%v, %v) part = %v, want %v", a, tt.pct, tt.mode, part.Amount(), tt.wantPart)
			}
			if part.Amount()+subtotal.Amount() != tt.d {
				t.Errorf("%q.ExtractPercentage(%v, %v) parts sum to %v, want %v",
					a, tt.pct, tt.mode, part.Amount()+subtotal.Amount(), tt.d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d    int64
			pct  float64
			mode RoundingMode
			want error
		}{
			"mode":     {12100, 21, RoundingMode(0), ErrInvalidArgument},
			"nan":      {12100, math.NaN(), RoundHalfUp, ErrInvalidArgument},
			"inf":      {12100, math.Inf(-1), RoundHalfUp, ErrInvalidArgument},
			"zero div": {12100, -100, RoundHalfUp, ErrInvalidArgument},
			"overflow": {math.MinInt64, -50, RoundHalfUp, ErrOverflow},
		}
		for name, tt := range tests {
			a := MustNewMoney("USD", tt.d)
			_, _, err := a.ExtractPercentage(tt.pct, tt.mode)
			if err == nil {
				t.Errorf("%s: %q.ExtractPercentage(%v, %v) did not fail", name, a, tt.pct, tt.mode)
				continue
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("%s: %q.ExtractPercentage(%v, %v) = %v, want %v", name, a, tt.pct, tt.mode, err, tt.want)
			}
		}
	})
}

// FuzzMoney_Split checks that splitting never loses or gains a minor
// unit and that the parts differ by at most one unit.
func FuzzMoney_Split(f *testing.F) {
	f.Add(int64(101), 3)
	f.Add(int64(-101), 3)
	f.Add(int64(0), 1)
	f.Add(int64(math.MaxInt64), 7)
	f.Add(int64(math.MinInt64), 7)

	f.Fuzz(func(t *testing.T, amount int64, parts int) {
		if parts <= 0 || parts > 1000 {
			t.Skip()
		}
		m := MustNewMoney("USD", amount)
		got, err := m.Split(parts)
		if err != nil {
			t.Fatalf("%q.Split(%v) failed: %v", m, parts, err)
		}
		sum := int64(0)
		lo, hi := got[0].Amount(), got[0].Amount()
		for i := range got {
			sum += got[i].Amount()
			lo = min(lo, got[i].Amount())
			hi = max(hi, got[i].Amount())
		}
		if sum != amount {
			t.Errorf("%q.Split(%v) sums to %v, want %v", m, parts, sum, amount)
		}
		if hi-lo > 1 {
			t.Errorf("%q.Split(%v) spreads from %v to %v", m, parts, lo, hi)
		}
	})
}

// FuzzMoney_Allocate checks that ratio allocation preserves the total
// exactly for arbitrary amounts and small ratio lists.
func FuzzMoney_Allocate(f *testing.F) {
	f.Add(int64(101), uint16(1), uint16(1), uint16(1))
	f.Add(int64(-101), uint16(1), uint16(1), uint16(1))
	f.Add(int64(100), uint16(3), uint16(7), uint16(0))
	f.Add(int64(math.MaxInt64), uint16(1), uint16(2), uint16(3))
	f.Add(int64(math.MinInt64), uint16(9), uint16(1), uint16(90))

	f.Fuzz(func(t *testing.T, amount int64, r1, r2, r3 uint16) {
		ratios := []float64{float64(r1), float64(r2), float64(r3)}
		if r1 == 0 && r2 == 0 && r3 == 0 {
			t.Skip()
		}
		m := MustNewMoney("USD", amount)
		got, err := m.Allocate(ratios...)
		if err != nil {
			t.Fatalf("%q.Allocate(%v) failed: %v", m, ratios, err)
		}
		sum := int64(0)
		for i := range got {
			sum += got[i].Amount()
		}
		if sum != amount {
			t.Errorf("%q.Allocate(%v) sums to %v, want %v", m, ratios, sum, amount)
		}
	})
}
