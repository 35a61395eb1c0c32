package messagecloud

import (
	"errors"
	"time"

	"github.com/Behyna/sms-services/messagecloud/pkg/httpclient"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Recorder receives send and validation outcomes, typically for metrics.
type Recorder interface {
	RecordValidationError(field string)
	RecordSend(outcome, errorCode string, duration time.Duration)
}

const (
	OutcomeSuccess        = "success"
	OutcomeRejected       = "rejected"
	OutcomeTimeout        = "timeout"
	OutcomeTransportError = "transport_error"
)

type nopRecorder struct{}

func (nopRecorder) RecordValidationError(string) {}
func (nopRecorder) RecordSend(string, string, time.Duration) {}

type options struct {
	logging   bool
	logger    *zap.Logger
	config    Config
	transport httpclient.HTTPClient
	newID     func() string
	recorder  Recorder
}

type Option func(*options)

// WithLogging turns the attached logger on or off. Logging is on by default
// but only has an effect once a logger is supplied.
func WithLogging(enabled bool) Option {
	return func(o *options) {
		o.logging = enabled
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

func WithTransport(client httpclient.HTTPClient) Option {
	return func(o *options) {
		o.transport = client
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// Draft is the in-progress message. Nil pointers mean "not set" and are
// filled in by Resolve.
type Draft struct {
	MSISDN   string
	SenderID string
	ID       string
	Body     *string
	Network  *string
	Value    *float64
	Currency *string
	Reply    *int
	Category string
	Encoding string
	Binary   bool
	UDH      string
}

func (d Draft) clone() Draft {
	out := d
	if d.Body != nil {
		v := *d.Body
		out.Body = &v
	}
	if d.Network != nil {
		v := *d.Network
		out.Network = &v
	}
	if d.Value != nil {
		v := *d.Value
		out.Value = &v
	}
	if d.Currency != nil {
		v := *d.Currency
		out.Currency = &v
	}
	if d.Reply != nil {
		v := *d.Reply
		out.Reply = &v
	}
	return out
}

// SMSMessage is a value-typed builder. Every setter returns an updated copy
// and leaves the receiver untouched, so a rejected update never changes a
// message that is already held by the caller.
type SMSMessage struct {
	creds     Credentials
	draft     Draft
	config    Config
	logger    *zap.Logger
	transport httpclient.HTTPClient
	newID     func() string
	recorder  Recorder
}

func NewSMSMessage(accountID, secret string, opts ...Option) SMSMessage {
	o := options{logging: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	logger := o.logger
	if !o.logging {
		logger = nil
	}

	m := SMSMessage{
		creds:     NewCredentials(accountID, secret),
		config:    o.config,
		logger:    logger,
		transport: o.transport,
		newID:     o.newID,
		recorder:  o.recorder,
	}.ready()
	m.logger.Debug("Message object constructed")

	return m
}

// ready fills every unset collaborator with its default, so that a zero
// SMSMessage behaves like one built by NewSMSMessage with no options.
func (m SMSMessage) ready() SMSMessage {
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.config = m.config.withDefaults()
	if m.transport == nil {
		m.transport = httpclient.NewHTTPClient(m.config.Timeout)
	}
	if m.newID == nil {
		m.newID = uuid.NewString
	}
	if m.recorder == nil {
		m.recorder = nopRecorder{}
	}
	return m
}

func (m SMSMessage) Credentials() Credentials {
	return m.creds
}

func (m SMSMessage) Draft() Draft {
	return m.draft.clone()
}

func (m SMSMessage) check(field string, value any) error {
	if err := checkField(field, value); err != nil {
		m.logger.Error("Invalid field value", zap.String("field", field), zap.Error(err))
		m.recorder.RecordValidationError(field)
		return err
	}
	return nil
}

func (m SMSMessage) MSISDN(msisdn string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldMSISDN, msisdn); err != nil {
		return m, err
	}
	m.draft.MSISDN = msisdn
	m.logger.Debug("MSISDN has been set", zap.String("msisdn", msisdn))
	return m, nil
}

func (m SMSMessage) ID(id string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldID, id); err != nil {
		return m, err
	}
	m.draft.ID = id
	m.logger.Debug("ID has been set", zap.String("id", id))
	return m, nil
}

// ClearID drops an explicitly set id so the next Send generates a new one.
func (m SMSMessage) ClearID() SMSMessage {
	m.draft.ID = ""
	return m
}

func (m SMSMessage) Body(body string) (SMSMessage, error) {
	m = m.ready()
	m.draft.Body = &body
	m.logger.Debug("Message body has been set", zap.String("body", body))
	return m, nil
}

func (m SMSMessage) SenderID(senderID string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldSenderID, senderID); err != nil {
		return m, err
	}
	m.draft.SenderID = senderID
	m.logger.Debug("Sender ID has been set", zap.String("sender_id", senderID))
	return m, nil
}

func (m SMSMessage) Network(network string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldNetwork, network); err != nil {
		return m, err
	}
	m.draft.Network = &network
	m.logger.Debug("Network has been set", zap.String("network", network))
	return m, nil
}

func (m SMSMessage) Value(value float64) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldValue, value); err != nil {
		return m, err
	}
	m.draft.Value = &value
	m.logger.Debug("Value has been set", zap.Float64("value", value))
	return m, nil
}

// ValueString accepts a numeric string such as "0.00" or "10".
func (m SMSMessage) ValueString(value string) (SMSMessage, error) {
	m = m.ready()
	f, err := cast.ToFloat64E(value)
	if err != nil {
		verr := newValidationError(FieldValue, fieldRules[FieldValue].reason)
		m.logger.Error("Invalid field value", zap.String("field", FieldValue), zap.Error(verr))
		m.recorder.RecordValidationError(FieldValue)
		return m, verr
	}
	return m.Value(f)
}

func (m SMSMessage) Currency(currency string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldCurrency, currency); err != nil {
		return m, err
	}
	m.draft.Currency = &currency
	m.logger.Debug("Currency has been set", zap.String("currency", currency))
	return m, nil
}

func (m SMSMessage) Reply(reply int) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldReply, reply); err != nil {
		return m, err
	}
	m.draft.Reply = &reply
	m.logger.Debug("Reply has been set", zap.Int("reply", reply))
	return m, nil
}

func (m SMSMessage) UDH(udh string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldUDH, udh); err != nil {
		return m, err
	}
	m.draft.UDH = udh
	m.logger.Debug("UDH has been set", zap.String("udh", udh))
	return m, nil
}

func (m SMSMessage) Binary(binary bool) (SMSMessage, error) {
	m = m.ready()
	m.draft.Binary = binary
	m.logger.Debug("Binary has been set", zap.Bool("binary", binary))
	return m, nil
}

func (m SMSMessage) Category(category string) (SMSMessage, error) {
	m = m.ready()
	if err := m.check(FieldCategory, category); err != nil {
		return m, err
	}
	m.draft.Category = category
	m.logger.Debug("Category has been set", zap.String("category", category))
	return m, nil
}

func (m SMSMessage) Encoding(encoding string) (SMSMessage, error) {
	m = m.ready()
	m.draft.Encoding = encoding
	m.logger.Debug("Encoding has been set", zap.String("encoding", encoding))
	return m, nil
}

// Field is one deferred setter call, applied by With.
type Field func(SMSMessage) (SMSMessage, error)

// With applies fields in order. On the first failure it returns the receiver
// unchanged together with that error.
func (m SMSMessage) With(fields ...Field) (SMSMessage, error) {
	m = m.ready()
	next := m
	for _, field := range fields {
		if field == nil {
			continue
		}
		var err error
		if next, err = field(next); err != nil {
			return m, err
		}
	}
	return next, nil
}

func SetMSISDN(msisdn string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.MSISDN(msisdn) }
}

func SetID(id string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.ID(id) }
}

func SetBody(body string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Body(body) }
}

func SetSenderID(senderID string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.SenderID(senderID) }
}

func SetNetwork(network string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Network(network) }
}

func SetValue(value float64) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Value(value) }
}

func SetValueString(value string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.ValueString(value) }
}

func SetCurrency(currency string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Currency(currency) }
}

func SetReply(reply int) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Reply(reply) }
}

func SetUDH(udh string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.UDH(udh) }
}

func SetBinary(binary bool) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Binary(binary) }
}

func SetCategory(category string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Category(category) }
}

func SetEncoding(encoding string) Field {
	return func(m SMSMessage) (SMSMessage, error) { return m.Encoding(encoding) }
}

// IsValidationError reports whether err came from local validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
