package messagecloud

import "go.uber.org/zap/zapcore"

const redacted = "***"

var _ zapcore.ObjectMarshaler = Credentials{}

// Credentials carries the account pair sent as cc/ekey. Neither value is
// ever printed or logged.
type Credentials struct {
	accountID string
	secret    string
}

func NewCredentials(accountID, secret string) Credentials {
	return Credentials{accountID: accountID, secret: secret}
}

func (c Credentials) AccountID() string {
	return c.accountID
}

func (c Credentials) String() string {
	return redacted + ":" + redacted
}

func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("account_id", redacted)
	enc.AddString("account_secret", redacted)
	return nil
}
