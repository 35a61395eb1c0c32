package messagecloud_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, messagecloud.ErrValidation)

	var verr *messagecloud.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, field, verr.Field)
	assert.NotEmpty(t, verr.Reason)
}

func TestValidateMSISDN(t *testing.T) {
	valid := []string{"447528748500", "44752874850", "353857025834", "1234567890"}
	for _, msisdn := range valid {
		t.Run("valid "+msisdn, func(t *testing.T) {
			assert.NoError(t, messagecloud.ValidateMSISDN(msisdn))
		})
	}

	invalid := map[string]string{
		"empty":         "",
		"non numeric":   "44752874850a",
		"leading zero":  "07528748500",
		"too long":      "444752874850000",
		"too short":     "60999",
		"plus prefix":   "+4475287485",
		"decimal point": "4475287485.0",
		"negative":      "-447528748500",
	}
	for name, msisdn := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			assertValidationError(t, messagecloud.ValidateMSISDN(msisdn), messagecloud.FieldMSISDN)
		})
	}
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"1", "12345", "827ccb0eea8a706c4c34a16891f84e7b", "de305d54-75b4-431b-adb2-eb6b9e546014"} {
		assert.NoError(t, messagecloud.ValidateID(id), id)
	}

	assertValidationError(t, messagecloud.ValidateID(""), messagecloud.FieldID)
}

func TestValidateSenderID(t *testing.T) {
	for _, senderID := range []string{"MessageCloud", "447528748500", "07528748500", "A"} {
		assert.NoError(t, messagecloud.ValidateSenderID(senderID), senderID)
	}

	for _, senderID := range []string{"", "thissenderidistoolong", "+447528748500", "00447528748500"} {
		assertValidationError(t, messagecloud.ValidateSenderID(senderID), messagecloud.FieldSenderID)
	}
}

func TestValidateNetwork(t *testing.T) {
	assert.NoError(t, messagecloud.ValidateNetwork("international"))
	assert.NoError(t, messagecloud.ValidateNetwork(strings.Repeat("n", 50)))

	assertValidationError(t, messagecloud.ValidateNetwork(""), messagecloud.FieldNetwork)
	assertValidationError(t, messagecloud.ValidateNetwork("myverylongnetworknamethatwontworkifwesendtotxtnation"), messagecloud.FieldNetwork)
}

func TestValidateValue(t *testing.T) {
	for _, value := range []float64{0, 0.00, 0.01, 0.29, 10, 12.5, 19.99, 100} {
		assert.NoError(t, messagecloud.ValidateValue(value), value)
	}

	for _, value := range []float64{-1, -10, -0.01, 0.004, 0.001, 12.345, math.NaN(), math.Inf(1)} {
		assertValidationError(t, messagecloud.ValidateValue(value), messagecloud.FieldValue)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, currency := range []string{"GBP", "USD", "EUR"} {
		assert.NoError(t, messagecloud.ValidateCurrency(currency), currency)
	}

	for _, currency := range []string{"", "GB", "GBPS", "gbp", "G1P"} {
		assertValidationError(t, messagecloud.ValidateCurrency(currency), messagecloud.FieldCurrency)
	}
}

func TestValidateReply(t *testing.T) {
	assert.NoError(t, messagecloud.ValidateReply(0))
	assert.NoError(t, messagecloud.ValidateReply(1))

	assertValidationError(t, messagecloud.ValidateReply(2), messagecloud.FieldReply)
	assertValidationError(t, messagecloud.ValidateReply(-1), messagecloud.FieldReply)
}

func TestValidateUDH(t *testing.T) {
	assert.NoError(t, messagecloud.ValidateUDH("050003CC0201"))
	assert.NoError(t, messagecloud.ValidateUDH(strings.Repeat("A", 255)))

	assertValidationError(t, messagecloud.ValidateUDH(""), messagecloud.FieldUDH)
	assertValidationError(t, messagecloud.ValidateUDH(strings.Repeat("A", 256)), messagecloud.FieldUDH)
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, messagecloud.ValidateCategory("100"))
	assert.NoError(t, messagecloud.ValidateCategory("000"))

	for _, category := range []string{"", "10", "1000", "abc", "1.0"} {
		assertValidationError(t, messagecloud.ValidateCategory(category), messagecloud.FieldCategory)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &messagecloud.ValidationError{Field: messagecloud.FieldSenderID, Reason: "required"}

	assert.Equal(t, "sender_id: required", err.Error())
	assert.True(t, messagecloud.IsValidationError(err))
	assert.False(t, messagecloud.IsValidationError(messagecloud.ErrTimeout))
}
