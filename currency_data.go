package money

// currencyInfo holds the registry entry for a currency code: the number
// of minor units per major unit and the number of fractional digits.
type currencyInfo struct {
	subunit int64
	digits  int
}

// currLookup is the built-in ISO 4217-style registry used by
// [ParseCurrency]. Each code has exactly one canonical definition, and
// the subunit is always 10^digits. The table is never mutated after
// initialization.
var currLookup = map[string]currencyInfo{
	// No minor units.
	"BIF": {1, 0},
	"CLP": {1, 0},
	"DJF": {1, 0},
	"GNF": {1, 0},
	"ISK": {1, 0},
	"JPY": {1, 0},
	"KMF": {1, 0},
	"KRW": {1, 0},
	"PYG": {1, 0},
	"RWF": {1, 0},
	"UGX": {1, 0},
	"VND": {1, 0},
	"VUV": {1, 0},
	"XAF": {1, 0},
	"XOF": {1, 0},
	"XPF": {1, 0},
	"XXX": {1, 0},

	// Two fractional digits.
	"AED": {100, 2},
	"ARS": {100, 2},
	"AUD": {100, 2},
	"BRL": {100, 2},
	"CAD": {100, 2},
	"CHF": {100, 2},
	"CNY": {100, 2},
	"COP": {100, 2},
	"CZK": {100, 2},
	"DKK": {100, 2},
	"EGP": {100, 2},
	"EUR": {100, 2},
	"GBP": {100, 2},
	"HKD": {100, 2},
	"HUF": {100, 2},
	"IDR": {100, 2},
	"ILS": {100, 2},
	"INR": {100, 2},
	"MAD": {100, 2},
	"MXN": {100, 2},
	"MYR": {100, 2},
	"NGN": {100, 2},
	"NOK": {100, 2},
	"NZD": {100, 2},
	"PEN": {100, 2},
	"PHP": {100, 2},
	"PKR": {100, 2},
	"PLN": {100, 2},
	"RON": {100, 2},
	"RUB": {100, 2},
	"SAR": {100, 2},
	"SEK": {100, 2},
	"SGD": {100, 2},
	"THB": {100, 2},
	"TRY": {100, 2},
	"TWD": {100, 2},
	"USD": {100, 2},
	"ZAR": {100, 2},

	// Three fractional digits.
	"BHD": {1000, 3},
	"IQD": {1000, 3},
	"JOD": {1000, 3},
	"KWD": {1000, 3},
	"LYD": {1000, 3},
	"OMR": {1000, 3},
	"TND": {1000, 3},
}
