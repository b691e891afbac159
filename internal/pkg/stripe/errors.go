package stripe

import (
	"errors"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v82"
)

// Error codes used at the provider boundary.
const (
	CodeAPICallFailed     = "api_call_failed"
	CodeMalformedResponse = "malformed_response"
)

// Error wraps a failure at the Stripe boundary with a stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stripe error [%s]: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("stripe error [%s]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a boundary error with the given code, message and cause.
func NewError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// IsMalformed reports whether err stems from a provider response missing
// required fields.
func IsMalformed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeMalformedResponse
}

// UserMessage extracts the provider's own human-readable message when the
// error originated from a rejected Stripe request, so views can surface it
// verbatim. Any other failure maps to a generic message.
func UserMessage(err error) string {
	var apiErr *stripeapi.Error
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		return apiErr.Msg
	}
	return "an unexpected error occurred, please try again"
}

// IsProviderError reports whether err carries a Stripe API rejection.
func IsProviderError(err error) bool {
	var apiErr *stripeapi.Error
	return errors.As(err, &apiErr)
}
