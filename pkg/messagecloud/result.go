package messagecloud

import (
	"net/http"
	"regexp"
	"strings"
	"sync"
)

// errorCodePattern matches anywhere in the body, not only at the start.
var errorCodePattern = regexp.MustCompile(`(IR|E)-\d{3}|NO CREDITS|BARRED`)

// Result wraps one gateway response. The error code is resolved lazily on
// first use and cached.
type Result struct {
	statusCode    int
	body          string
	successMarker string
	callbackID    string

	once      sync.Once
	errorCode string
}

func NewResult(statusCode int, body string, successMarker string) *Result {
	if successMarker == "" {
		successMarker = DefaultSuccessMarker
	}
	return &Result{statusCode: statusCode, body: body, successMarker: successMarker}
}

func (r *Result) StatusCode() int {
	return r.statusCode
}

func (r *Result) Body() string {
	return r.body
}

func (r *Result) SetCallbackID(id string) {
	r.callbackID = id
}

func (r *Result) CallbackID() string {
	return r.callbackID
}

func (r *Result) Succeeded() bool {
	return r.statusCode == http.StatusOK && strings.TrimSpace(r.body) == r.successMarker
}

func (r *Result) ErrorCode() string {
	r.once.Do(func() {
		r.errorCode = ErrorUnknown
		if match := errorCodePattern.FindString(r.body); match != "" {
			r.errorCode = match
		}
	})
	return r.errorCode
}

func (r *Result) ErrorMessage() string {
	return GetErrorMessage(r.ErrorCode())
}
