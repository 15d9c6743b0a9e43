package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// amountRegex accepts non-negative amounts with at most two fraction digits.
const amountRegex = `^\d+(\.\d{1,2})?$`

const (
	AmountTag = "amount"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AmountTag: ValidateAmount,
}

func ValidateAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	return regexp.MustCompile(amountRegex).MatchString(amount)
}
