package validator

import (
	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"github.com/go-playground/validator/v10"
)

const (
	MSISDNTag   = "msisdn"
	CurrencyTag = "currency"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	MSISDNTag:   ValidateMSISDN,
	CurrencyTag: ValidateCurrency,
}

func ValidateMSISDN(fl validator.FieldLevel) bool {
	return messagecloud.ValidateMSISDN(fl.Field().String()) == nil
}

// ValidateCurrency accepts an empty value so the gateway default applies.
func ValidateCurrency(fl validator.FieldLevel) bool {
	currency := fl.Field().String()
	return currency == "" || messagecloud.ValidateCurrency(currency) == nil
}
