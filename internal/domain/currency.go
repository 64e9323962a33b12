package domain

// Currency is a display label for amounts. Amounts are never converted
// between currencies; the code only affects presentation.
type Currency string

// Supported currency codes.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	PHP Currency = "PHP"
)

// DefaultCurrency is used when no currency has been chosen yet or when
// a persisted value is not recognized.
const DefaultCurrency = USD

var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
	PHP: "₱",
}

// Currencies returns the supported set in display order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, JPY, PHP}
}

// Supported reports whether c belongs to the supported set.
func (c Currency) Supported() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol for c, falling back to the code
// itself for unrecognized values.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// NormalizeCurrency maps a persisted code to a supported currency,
// discarding unrecognized values in favor of the default. Loading is
// the only place membership is enforced; SetCurrency stores whatever
// the caller chose.
func NormalizeCurrency(code string) Currency {
	if c := Currency(code); c.Supported() {
		return c
	}
	return DefaultCurrency
}
