package messagecloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Send resolves the draft, performs one GET against the gateway and wraps
// the reply. Gateway rejections come back as a Result that did not succeed;
// the returned error is reserved for local validation and transport failures.
func (m SMSMessage) Send(ctx context.Context) (*Result, error) {
	m = m.ready()
	req, err := Resolve(m.draft, m.newID, m.logger)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			m.recorder.RecordValidationError(verr.Field)
		}
		return nil, err
	}

	params := req.Params(m.creds)
	headers := map[string]string{
		"User-Agent": m.config.UserAgent,
	}

	m.logger.Debug("Sending the following to MessageCloud",
		zap.String("endpoint", m.config.endpoint()),
		zap.Object("credentials", m.creds),
		zap.Any("params", redactParams(params)))

	start := time.Now()
	resp, err := m.transport.Get(ctx, m.config.endpoint(), params, headers)
	if err != nil {
		err = stripQuery(err)
		duration := time.Since(start)
		if isTimeout(err) {
			m.logger.Error("Gateway request timed out",
				zap.String("id", req.ID),
				zap.Duration("duration", duration),
				zap.Error(err))
			m.recorder.RecordSend(OutcomeTimeout, "", duration)
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		m.logger.Error("Gateway request failed",
			zap.String("id", req.ID),
			zap.Error(err))
		m.recorder.RecordSend(OutcomeTransportError, "", duration)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		m.recorder.RecordSend(OutcomeTransportError, "", time.Since(start))
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	result := NewResult(resp.StatusCode, string(body), m.config.SuccessMarker)
	result.SetCallbackID(req.ID)
	duration := time.Since(start)

	if !result.Succeeded() {
		m.logger.Error("Message was not sent",
			zap.String("id", req.ID),
			zap.Int("status_code", result.StatusCode()),
			zap.String("error_code", result.ErrorCode()),
			zap.String("error", result.ErrorMessage()))
		m.recorder.RecordSend(OutcomeRejected, result.ErrorCode(), duration)
		return result, nil
	}

	m.logger.Info("Message sent",
		zap.String("id", req.ID),
		zap.Duration("duration", duration))
	m.recorder.RecordSend(OutcomeSuccess, "", duration)

	return result, nil
}

// stripQuery drops the query string from a *url.Error so the account secret
// never ends up in an error message.
func stripQuery(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	u, perr := url.Parse(urlErr.URL)
	if perr != nil {
		return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
	}
	u.RawQuery = ""
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
