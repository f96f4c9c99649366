package entity

import (
	"math"
	"strconv"
	"strings"

	"grainauth/internal/errors"
)

// Money is an amount in minor units (cents) of a two-decimal currency.
type Money int64

// ParseMoney parses a decimal string such as "10", "10.5" or "10.00".
// More than two fractional digits is rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && (!isDigits(frac) || len(frac) > 2)) {
		return 0, errors.Errorf("invalid amount %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	if units > (math.MaxInt64-cents)/100 {
		return 0, errors.Errorf("amount %q out of range", s)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}

	return Money(total), nil
}

// MustParseMoney is ParseMoney for package-level constants.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}

	return m
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := v % 100
	pad := ""
	if cents < 10 {
		pad = "0"
	}

	return sign + strconv.FormatInt(v/100, 10) + "." + pad + strconv.FormatInt(cents, 10)
}

// Float64 is used where the storage layer expects a numeric literal.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
