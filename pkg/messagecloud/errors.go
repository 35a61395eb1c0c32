package messagecloud

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeTransport        = "TRANSPORT_ERROR"
)

var (
	ErrValidation = errors.New(ErrCodeValidationFailed)
	ErrTimeout    = errors.New(ErrCodeTimeout)
	ErrTransport  = errors.New(ErrCodeTransport)
)

// Field names used in ValidationError.
const (
	FieldMSISDN     = "destination_number"
	FieldID         = "id"
	FieldBody       = "body"
	FieldSenderID   = "sender_id"
	FieldNetwork    = "network"
	FieldValue      = "value"
	FieldCurrency   = "currency"
	FieldReply      = "reply_flag"
	FieldUDH        = "udh"
	FieldCategory   = "category"
	FieldNetworkVal = "network/value"
)

type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
