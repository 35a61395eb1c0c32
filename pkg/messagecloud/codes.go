package messagecloud

// Error codes the gateway embeds in a failed response body.
const (
	ErrorNoCredits = "NO CREDITS"
	ErrorBarred    = "BARRED"

	ErrorIR101 = "IR-101"
	ErrorIR102 = "IR-102"
	ErrorIR103 = "IR-103"
	ErrorIR104 = "IR-104"

	ErrorIR401 = "IR-401"
	ErrorIR403 = "IR-403"
	ErrorIR404 = "IR-404"
	ErrorIR405 = "IR-405"
	ErrorIR409 = "IR-409"
	ErrorIR410 = "IR-410"
	ErrorIR412 = "IR-412"
	ErrorIR413 = "IR-413"
	ErrorIR414 = "IR-414"
	ErrorIR415 = "IR-415"
	ErrorIR416 = "IR-416"
	ErrorIR417 = "IR-417"
	ErrorIR418 = "IR-418"
	ErrorIR419 = "IR-419"
	ErrorIR420 = "IR-420"

	ErrorE100 = "E-100"
	ErrorE101 = "E-101"
	ErrorE102 = "E-102"
	ErrorE103 = "E-103"
	ErrorE105 = "E-105"
	ErrorE107 = "E-107"
	ErrorE108 = "E-108"
	ErrorE109 = "E-109"

	ErrorUnknown = "ERROR_UNKNOWN"
)

const UnknownErrorMessage = "Unrecognised error code returned. Please contact MessageCloud Support at help@messagecloud.com for more assistance."

var errorMessages = map[string]string{
	ErrorNoCredits: "No credits remaining. Contact help@messagecloud.com and request more credits.",
	ErrorBarred:    "The end user has previously sent in a STOP request preventing any further messages.",

	ErrorIR101: "Duplicate post. You have already replied to a message with this ID. In most cases you can only reply to a message once.",
	ErrorIR102: "Missing details. A binary transaction has been requested, but the UDH has not been specified. You should set this with SMSMessage.UDH().",
	ErrorIR103: "Invalid username or password. If you are new to MessageCloud, you should create an account at https://my.messagecloud.com/register. The username and password values are case sensitive.",
	ErrorIR104: "Invalid details. Unable to find inbound record. Please check the provided SMSMessage.ID() and SMSMessage.Network() match the values we posted to you during the initial request.",

	ErrorIR401: "The SMSMessage.Reply() value is not being correctly evaluated. Please ensure you are sending it correctly.",
	ErrorIR403: "The SMSMessage.ID() value must be numeric for reply messages. A non-numeric value has been set.",
	ErrorIR404: "The SMSMessage.MSISDN() value was not set correctly. We need to know the phone number to which you are sending your SMS.",
	ErrorIR405: "The SMSMessage.MSISDN() value was not numeric. Please note that all phone number need to be numeric in value.",
	ErrorIR410: "The SMSMessage.Value() value was not numeric. Please ensure that the variable is numeric, e.g. 1.00.",
	ErrorIR412: "The SMSMessage.Network() / SMSMessage.Value() combination is not available.",
	ErrorIR413: "SMSMessage.Value() must be 0.00 or greater.",
	ErrorIR414: "Invalid username.",
	ErrorIR415: "Username not found.",
	ErrorIR416: "The SMSMessage.Body() value was empty and must be used for this transaction.",
	ErrorIR417: "Your SMSMessage.Body() value was too long for this transaction. Please ensure that the message does not exceed 160 characters.",
	ErrorIR418: "You cannot send a billed message to a MO-type SMSMessage.Network(). MO-type networks are billed on the inbound message, not on the outbound message.",
	ErrorIR419: "You cannot send a billed message via a bulk/free SMSMessage.Network().",
	ErrorIR420: "The SMSMessage.Network() value was invalid. The network to which you are attempting to send was not recognised.",

	ErrorE100: "Please contact MessageCloud Support at help@messagecloud.com for more assistance.",
	ErrorE101: "Operator Error.",
	ErrorE102: "Tariff Error. Please check the credit value that you've set.",
	ErrorE103: "Invalid Data. Please check your values and variables.",
	ErrorE105: "Invalid Operator ID.",
	ErrorE107: "Invalid Test. Please review your settings.",
	ErrorE108: "Sending failed as you have no credits remaining on your account.",
	ErrorE109: "Sending through your account via MessageCloud is currently disabled in this country.",
}

// GetErrorMessage resolves a gateway error code. Unknown codes, including
// IR-409 which has no documented text, map to UnknownErrorMessage.
func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return UnknownErrorMessage
}
