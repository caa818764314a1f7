package money

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Currency type represents a currency in the global financial system.
// It describes a short alphabetic code, the number of minor units per
// major unit (the subunit, e.g. 100 cents per dollar), and the number
// of fractional digits used to represent those minor units.
//
// Currency is an immutable value type: two currencies are equal if and
// only if their code, subunit, and fraction digits are all equal, so
// values can be compared with == and shared freely between goroutines.
//
// The zero value does not describe a usable currency; construct values
// with [ParseCurrency] or [NewCurrency].
//
// When persisting a currency, use the alphabetic code returned by the
// [Currency.Code] method; the subunit and fraction digits can be
// recovered from the registry via [ParseCurrency].
type Currency struct {
	code    string
	subunit int64
	digits  int
}

// ParseCurrency converts a string to a currency by looking the code up
// in the built-in registry. The lookup is case-insensitive:
//
//	USD
//	usd
//
// ParseCurrency returns an error if the string does not represent a
// registered currency code.
func ParseCurrency(code string) (Currency, error) {
	c := strings.ToUpper(code)
	info, ok := currLookup[c]
	if !ok {
		return Currency{}, fmt.Errorf("%w: unknown currency code %q", ErrInvalidArgument, code)
	}
	return Currency{code: c, subunit: info.subunit, digits: info.digits}, nil
}

// MustParseCurrency is like [ParseCurrency] but panics if the string
// cannot be parsed. It simplifies safe initialization of global
// variables holding currencies.
func MustParseCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurrency(%q) failed: %v", code, err))
	}
	return c
}

// NewCurrency constructs a currency directly from an explicit subunit
// and number of fraction digits, bypassing the registry. No validation
// is performed beyond the parameter types; the caller is responsible
// for supplying a consistent definition.
func NewCurrency(code string, subunit int64, digits int) Currency {
	return Currency{code: code, subunit: subunit, digits: digits}
}

// Code returns the alphabetic code of the currency.
func (c Currency) Code() string {
	return c.code
}

// SubUnit returns the number of minor units per major unit of the
// currency, e.g. 100 for currencies with 2 fractional digits.
func (c Currency) SubUnit() int64 {
	return c.subunit
}

// FractionDigits returns the number of digits after the decimal point
// required for representing the minor unit of the currency.
// The registry currently uses 0, 2, or 3:
//   - 0 indicates currencies without minor units, such as the Japanese Yen;
//   - 2 indicates currencies like the US Dollar, whose minor unit,
//     1 cent, is represented as 0.01 dollars;
//   - 3 indicates currencies like the Omani Rial, whose minor unit,
//     1 baisa, is represented as 0.001 rials.
func (c Currency) FractionDigits() int {
	return c.digits
}

// String method implements the [fmt.Stringer] interface and returns the
// alphabetic code of the currency. The zero value is rendered as "XXX",
// indicating an unknown currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurrency].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted alphabetic code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	s := c.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurrency].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns an alphabetic code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurrency(value)
	case []byte:
		*c, err = ParseCurrency(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", Currency{}, NullCurrency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.String(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = Currency{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = Currency{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
