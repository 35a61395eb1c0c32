package v1

type SendMessageResponse struct {
	CallbackID   string `json:"callback_id"`
	StatusCode   int    `json:"status_code"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
