package messagecloud

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FreeNetwork     = "INTERNATIONAL"
	DefaultCurrency = "GBP"
	DefaultValue    = 0.00
	DefaultReply    = 0
)

// Wire parameter names understood by gateway.php.
const (
	ParamAccountID = "cc"
	ParamSecret    = "ekey"
	ParamMessage   = "message"
	ParamTitle     = "title"
	ParamNetwork   = "network"
	ParamValue     = "value"
	ParamCurrency  = "currency"
	ParamEncoding  = "encoding"
	ParamNumber    = "number"
	ParamID        = "id"
	ParamReply     = "reply"
	ParamBinary    = "binary"
	ParamUDH       = "udh"
	ParamCategory  = "smscat"
)

// ResolvedRequest is a Draft with every default applied and every
// cross-field rule checked.
type ResolvedRequest struct {
	MSISDN   string
	SenderID string
	Body     string
	ID       string
	Network  string
	Value    float64
	Currency string
	Reply    int
	Category string
	Encoding string
	Binary   bool
	UDH      string
}

// Resolve validates d and fills in defaults. The order of the checks is part
// of the contract: required fields first, then defaults, then the free
// network rule, then id generation.
func Resolve(d Draft, newID func() string, logger *zap.Logger) (ResolvedRequest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if newID == nil {
		newID = uuid.NewString
	}

	logger.Debug("Validating the request")

	if d.MSISDN == "" {
		logger.Error("MSISDN must be set")
		return ResolvedRequest{}, newValidationError(FieldMSISDN, "required")
	}

	if d.SenderID == "" {
		logger.Error("Sender ID must be set")
		return ResolvedRequest{}, newValidationError(FieldSenderID, "required")
	}

	if d.Value != nil {
		if err := ValidateValue(*d.Value); err != nil {
			logger.Error("Invalid message value", zap.Float64("value", *d.Value))
			return ResolvedRequest{}, err
		}
	}

	req := ResolvedRequest{
		MSISDN:   d.MSISDN,
		SenderID: d.SenderID,
		ID:       d.ID,
		Category: d.Category,
		Encoding: d.Encoding,
		Binary:   d.Binary,
		UDH:      d.UDH,
	}

	if d.Body == nil {
		logger.Warn("No message body was set on the outgoing message")
	} else {
		req.Body = *d.Body
	}

	var network *string
	if d.Network != nil {
		v := *d.Network
		network = &v
	}

	if (d.Value == nil || *d.Value == 0) && network == nil {
		logger.Debug("Automatically setting the network for a zero value message", zap.String("network", FreeNetwork))
		v := FreeNetwork
		network = &v
	}

	req.Currency = DefaultCurrency
	if d.Currency != nil {
		req.Currency = *d.Currency
	} else {
		logger.Debug("Automatically setting the currency", zap.String("currency", DefaultCurrency))
	}

	req.Value = DefaultValue
	if d.Value != nil {
		req.Value = *d.Value
	} else {
		logger.Debug("Automatically setting the message value", zap.Float64("value", DefaultValue))
	}

	req.Reply = DefaultReply
	if d.Reply != nil {
		req.Reply = *d.Reply
	} else {
		logger.Debug("Automatically setting the reply value", zap.Int("reply", DefaultReply))
	}

	if network != nil {
		req.Network = *network
	}

	if IsFreeNetwork(req.Network) && req.Value > 0 {
		logger.Error("Free messages cannot have a value",
			zap.String("network", req.Network),
			zap.Float64("value", req.Value))
		return ResolvedRequest{}, newValidationError(FieldNetworkVal, "free network cannot carry a value")
	}

	if req.Binary && req.UDH == "" {
		logger.Error("Binary message without UDH")
		return ResolvedRequest{}, newValidationError(FieldUDH, "required when binary is set")
	}

	if req.ID == "" {
		req.ID = newID()
		logger.Debug("Generated message ID", zap.String("id", req.ID))
	}

	return req, nil
}

func IsFreeNetwork(network string) bool {
	return strings.EqualFold(network, FreeNetwork)
}

// Params builds the gateway query. Binary and udh are only sent for binary
// messages, smscat only for a non-zero category.
func (r ResolvedRequest) Params(creds Credentials) url.Values {
	params := url.Values{}
	params.Set(ParamAccountID, creds.accountID)
	params.Set(ParamSecret, creds.secret)
	params.Set(ParamMessage, r.Body)
	params.Set(ParamTitle, r.SenderID)
	params.Set(ParamNetwork, r.Network)
	params.Set(ParamValue, strconv.FormatFloat(r.Value, 'f', 2, 64))
	params.Set(ParamCurrency, r.Currency)
	params.Set(ParamEncoding, r.Encoding)
	params.Set(ParamNumber, r.MSISDN)
	params.Set(ParamID, r.ID)
	params.Set(ParamReply, strconv.Itoa(r.Reply))

	if r.Binary {
		params.Set(ParamBinary, "1")
		params.Set(ParamUDH, r.UDH)
	}

	if r.Category != "" && strings.Trim(r.Category, "0") != "" {
		params.Set(ParamCategory, r.Category)
	}

	return params
}

// redactParams returns a copy of params that is safe to log.
func redactParams(params url.Values) map[string]string {
	out := make(map[string]string, len(params))
	for key := range params {
		out[key] = params.Get(key)
	}
	for _, key := range []string{ParamAccountID, ParamSecret} {
		if _, ok := out[key]; ok {
			out[key] = redacted
		}
	}
	return out
}
