package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Customer is a record with identity, contact info and a current credit balance.
// Credit is held as a fixed-point decimal, exact to the cent.
type Customer struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Credit decimal.Decimal `json:"credit"`
	Note   string          `json:"note,omitempty"`
}

var (
	ErrCreditInvalid  = errors.New("credit must be a decimal amount with at most two fraction digits")
	ErrCreditNegative = errors.New("credit must not be negative")
)

// ParseCredit enforces the canonical credit input policy: the value must parse
// as a decimal with at most two fraction digits and must not be negative.
// Invalid input is rejected, never coerced to zero.
func ParseCredit(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, ErrCreditInvalid
	}

	if amount.Exponent() < -2 {
		return decimal.Decimal{}, ErrCreditInvalid
	}

	if amount.IsNegative() {
		return decimal.Decimal{}, ErrCreditNegative
	}

	return amount, nil
}
