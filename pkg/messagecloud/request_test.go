package messagecloud_test

import (
	"regexp"
	"testing"

	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func ptr[T any](v T) *T {
	return &v
}

func fixedID(id string) func() string {
	return func() string { return id }
}

func baseDraft() messagecloud.Draft {
	return messagecloud.Draft{
		MSISDN:   "447528748500",
		SenderID: "MessageCloud",
		Body:     ptr("Hello, world!"),
	}
}

func TestResolve_RequiredFields(t *testing.T) {
	t.Run("missing msisdn", func(t *testing.T) {
		d := baseDraft()
		d.MSISDN = ""
		d.SenderID = ""

		_, err := messagecloud.Resolve(d, nil, nil)
		assertValidationError(t, err, messagecloud.FieldMSISDN)
	})

	t.Run("missing sender id", func(t *testing.T) {
		d := baseDraft()
		d.SenderID = ""

		_, err := messagecloud.Resolve(d, nil, nil)
		assertValidationError(t, err, messagecloud.FieldSenderID)
	})
}

func TestResolve_Defaults(t *testing.T) {
	req, err := messagecloud.Resolve(baseDraft(), fixedID("generated"), nil)
	require.NoError(t, err)

	assert.Equal(t, messagecloud.FreeNetwork, req.Network)
	assert.Equal(t, "GBP", req.Currency)
	assert.Equal(t, 0.00, req.Value)
	assert.Equal(t, 0, req.Reply)
	assert.Equal(t, "generated", req.ID)
	assert.Equal(t, "Hello, world!", req.Body)
}

func TestResolve_ZeroValueWithExplicitNetworkKeepsNetwork(t *testing.T) {
	d := baseDraft()
	d.Network = ptr("VODAFONE")
	d.Value = ptr(0.0)

	req, err := messagecloud.Resolve(d, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "VODAFONE", req.Network)
}

func TestResolve_PaidMessageWithoutNetworkIsNotInferred(t *testing.T) {
	d := baseDraft()
	d.Value = ptr(1.5)

	req, err := messagecloud.Resolve(d, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, req.Network)
	assert.Equal(t, 1.5, req.Value)
}

func TestResolve_FreeNetworkCannotCarryValue(t *testing.T) {
	for _, network := range []string{"INTERNATIONAL", "international", "International"} {
		t.Run(network, func(t *testing.T) {
			d := baseDraft()
			d.Network = ptr(network)
			d.Value = ptr(1.0)

			_, err := messagecloud.Resolve(d, nil, nil)
			assertValidationError(t, err, messagecloud.FieldNetworkVal)
		})
	}
}

func TestResolve_RejectsValueBelowCent(t *testing.T) {
	d := baseDraft()
	d.Value = ptr(0.004)

	_, err := messagecloud.Resolve(d, fixedID("id"), nil)
	assertValidationError(t, err, messagecloud.FieldValue)
}

func TestResolvedRequest_ValueIsExactOnTheWire(t *testing.T) {
	d := baseDraft()
	d.Value = ptr(19.99)
	d.Network = ptr("VODAFONE")

	req, err := messagecloud.Resolve(d, fixedID("id"), nil)
	require.NoError(t, err)

	assert.Equal(t, "19.99", req.Params(messagecloud.NewCredentials("acme", "s3cret")).Get("value"))
}

func TestResolve_KeepsExplicitValues(t *testing.T) {
	d := baseDraft()
	d.Network = ptr("O2")
	d.Value = ptr(2.5)
	d.Currency = ptr("EUR")
	d.Reply = ptr(1)
	d.ID = "my-id"

	req, err := messagecloud.Resolve(d, fixedID("unused"), nil)
	require.NoError(t, err)

	assert.Equal(t, "O2", req.Network)
	assert.Equal(t, 2.5, req.Value)
	assert.Equal(t, "EUR", req.Currency)
	assert.Equal(t, 1, req.Reply)
	assert.Equal(t, "my-id", req.ID)
}

func TestResolve_BinaryRequiresUDH(t *testing.T) {
	d := baseDraft()
	d.Binary = true

	_, err := messagecloud.Resolve(d, nil, nil)
	assertValidationError(t, err, messagecloud.FieldUDH)
}

func TestResolve_GeneratesUUID(t *testing.T) {
	req, err := messagecloud.Resolve(baseDraft(), nil, nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`), req.ID)
	assert.Len(t, req.ID, 36)
}

func TestResolve_DoesNotMutateDraft(t *testing.T) {
	d := baseDraft()

	_, err := messagecloud.Resolve(d, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, d.Network)
	assert.Nil(t, d.Currency)
	assert.Nil(t, d.Value)
	assert.Nil(t, d.Reply)
	assert.Empty(t, d.ID)
}

func TestResolve_WarnsOnMissingBody(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := baseDraft()
	d.Body = nil

	req, err := messagecloud.Resolve(d, nil, zap.New(core))
	require.NoError(t, err)
	assert.Empty(t, req.Body)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "No message body")
}

func TestResolvedRequest_Params(t *testing.T) {
	creds := messagecloud.NewCredentials("acme", "s3cret")

	t.Run("plain text message", func(t *testing.T) {
		req := messagecloud.ResolvedRequest{
			MSISDN:   "447528748500",
			SenderID: "MessageCloud",
			Body:     "Hello, world!",
			ID:       "abc",
			Network:  "INTERNATIONAL",
			Value:    0,
			Currency: "GBP",
			Reply:    0,
		}

		params := req.Params(creds)

		assert.Equal(t, "acme", params.Get("cc"))
		assert.Equal(t, "s3cret", params.Get("ekey"))
		assert.Equal(t, "Hello, world!", params.Get("message"))
		assert.Equal(t, "MessageCloud", params.Get("title"))
		assert.Equal(t, "INTERNATIONAL", params.Get("network"))
		assert.Equal(t, "0.00", params.Get("value"))
		assert.Equal(t, "GBP", params.Get("currency"))
		assert.Equal(t, "447528748500", params.Get("number"))
		assert.Equal(t, "abc", params.Get("id"))
		assert.Equal(t, "0", params.Get("reply"))

		assert.True(t, params.Has("encoding"))
		assert.False(t, params.Has("binary"))
		assert.False(t, params.Has("udh"))
		assert.False(t, params.Has("smscat"))
		assert.Len(t, params, 11)
	})

	t.Run("binary message with category", func(t *testing.T) {
		req := messagecloud.ResolvedRequest{
			MSISDN:   "447528748500",
			SenderID: "MessageCloud",
			ID:       "abc",
			Network:  "O2",
			Value:    1.5,
			Currency: "GBP",
			Reply:    1,
			Binary:   true,
			UDH:      "050003CC0201",
			Category: "100",
			Encoding: "UTF-8",
		}

		params := req.Params(creds)

		assert.Equal(t, "1.50", params.Get("value"))
		assert.Equal(t, "1", params.Get("reply"))
		assert.Equal(t, "1", params.Get("binary"))
		assert.Equal(t, "050003CC0201", params.Get("udh"))
		assert.Equal(t, "100", params.Get("smscat"))
		assert.Equal(t, "UTF-8", params.Get("encoding"))
		assert.Len(t, params, 14)
	})

	t.Run("zero category is omitted", func(t *testing.T) {
		req := messagecloud.ResolvedRequest{MSISDN: "447528748500", SenderID: "X", Category: "000"}

		assert.False(t, req.Params(creds).Has("smscat"))
	})
}
