package messagecloud

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type fieldRule struct {
	tag    string
	reason string
}

var fieldRules = map[string]fieldRule{
	FieldMSISDN: {
		tag:    "required,number,min=10,max=12,startsnotwith=0",
		reason: "must be a numeric string between 10 and 12 characters long in international format",
	},
	FieldID: {
		tag:    "required",
		reason: "must be a non-empty string",
	},
	FieldSenderID: {
		tag:    "required,min=1,max=12",
		reason: "must be a string between 1 and 12 characters long",
	},
	FieldNetwork: {
		tag:    "required,min=1,max=50",
		reason: "must be a string between 1 and 50 characters long",
	},
	FieldValue: {
		tag:    "gte=0",
		reason: "must be a floating point number of 0.00 or greater with at most two decimal places",
	},
	FieldCurrency: {
		tag:    "required,len=3,alpha,uppercase",
		reason: "should be in ISO 4217 standard, e.g. USD, EUR, GBP",
	},
	FieldReply: {
		tag:    "oneof=0 1",
		reason: "must be 1 or 0",
	},
	FieldUDH: {
		tag:    "required,min=1,max=255",
		reason: "must be a string between 1 and 255 characters long",
	},
	FieldCategory: {
		tag:    "required,number,len=3",
		reason: "must be a numeric string with a length of 3",
	},
}

func checkField(field string, value any) error {
	rule, ok := fieldRules[field]
	if !ok {
		return nil
	}

	if f, isFloat := value.(float64); isFloat && !isAmount(f) {
		return newValidationError(field, rule.reason)
	}

	if err := validate.Var(value, rule.tag); err != nil {
		return newValidationError(field, rule.reason)
	}

	return nil
}

// isAmount reports whether f is finite and has no digits below the cent, so
// that the two-decimal wire form is exact.
func isAmount(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Round(f*100)/100 == f
}

func ValidateMSISDN(msisdn string) error {
	return checkField(FieldMSISDN, msisdn)
}

func ValidateID(id string) error {
	return checkField(FieldID, id)
}

func ValidateSenderID(senderID string) error {
	return checkField(FieldSenderID, senderID)
}

func ValidateNetwork(network string) error {
	return checkField(FieldNetwork, network)
}

func ValidateValue(value float64) error {
	return checkField(FieldValue, value)
}

func ValidateCurrency(currency string) error {
	return checkField(FieldCurrency, currency)
}

func ValidateReply(reply int) error {
	return checkField(FieldReply, reply)
}

func ValidateUDH(udh string) error {
	return checkField(FieldUDH, udh)
}

func ValidateCategory(category string) error {
	return checkField(FieldCategory, category)
}
