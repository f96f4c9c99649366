package entity

import "time"

// Tarif is a named pricing plan users can subscribe to.
type Tarif struct {
	ID          int64
	Name        string
	Description string
	Price       Money  // Non-negative.
	Currency    string // Three-letter code.
	Scope       string // Feature tier, e.g. "basic".
	Terms       string // Billing cadence, e.g. "monthly".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TarifDefaults holds the values a tarif takes when the caller omits them.
// The tarifs migration carries the same literals as column defaults.
type TarifDefaults struct {
	Price    Money
	Currency string
	Scope    string
	Terms    string
}

// DefaultTarifDefaults returns price 10.00, currency USD, scope basic and terms monthly.
func DefaultTarifDefaults() TarifDefaults {
	return TarifDefaults{
		Price:    MustParseMoney("10.00"),
		Currency: "USD",
		Scope:    "basic",
		Terms:    "monthly",
	}
}

// TarifFilter narrows a catalog listing; nil fields match everything.
type TarifFilter struct {
	Scope *string
	Terms *string
}
