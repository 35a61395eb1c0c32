package service

// SendMessageCommand carries one outbound message. Nil pointers and empty
// strings leave the field unset so the gateway defaults apply.
type SendMessageCommand struct {
	MSISDN   string
	Body     *string
	SenderID string
	ID       string
	Network  string
	Value    *float64
	Currency string
	Reply    *int
	UDH      string
	Binary   bool
	Category string
	Encoding string
}

type SendMessageResponse struct {
	CallbackID   string
	StatusCode   int
	Succeeded    bool
	ErrorCode    string
	ErrorMessage string
}
