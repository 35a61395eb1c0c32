package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	MessageSent     = "message sent"
	MessageRejected = "message rejected by gateway"
)

const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgValidationFailed   = "message failed validation"
	ErrMsgGatewayTimeout     = "gateway did not answer in time"
	ErrMsgGatewayUnavailable = "gateway could not be reached"
	ErrMsgInternalError      = "Internal server error"
	ErrMsgInvalidRequestBody = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:   ErrMsgValidationFailed,
	ErrCodeGatewayTimeout:     ErrMsgGatewayTimeout,
	ErrCodeGatewayUnavailable: ErrMsgGatewayUnavailable,
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeGatewayUnavailable:
		return 502
	case ErrCodeGatewayTimeout:
		return 504
	default:
		return 500
	}
}
