package v1

type SendMessageRequest struct {
	MSISDN   string   `json:"msisdn" validate:"required,msisdn"`
	Body     *string  `json:"body"`
	SenderID string   `json:"sender_id" validate:"required,max=12"`
	ID       string   `json:"id"`
	Network  string   `json:"network" validate:"max=50"`
	Value    *float64 `json:"value" validate:"omitempty,gte=0"`
	Currency string   `json:"currency" validate:"currency"`
	Reply    *int     `json:"reply" validate:"omitempty,oneof=0 1"`
	UDH      string   `json:"udh" validate:"max=255"`
	Binary   bool     `json:"binary"`
	Category string   `json:"category" validate:"omitempty,number,len=3"`
	Encoding string   `json:"encoding"`
}
