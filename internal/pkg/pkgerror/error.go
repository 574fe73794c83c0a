package pkgerror

import (
	"fmt"
	"net/http"
)

// Name is the classification label carried by every Error.
const Name = "Cityworks Exception"

// Type classifies errors by where they originated.
type Type int

const (
	TypeValidation Type = iota // Local precondition failures, the remote service was never called.
	TypeService                // The remote service answered with a non-success status.
	TypeTransport              // Network, HTTP status or decoding failures.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeService:
		return "ERROR_TYPE_SERVICE"
	case TypeTransport:
		return "ERROR_TYPE_TRANSPORT"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// ServiceMessage is one error record reported by the remote service.
type ServiceMessage struct {
	MessageType  int     `json:"MessageType"`
	Code         int     `json:"Code"`
	Service      string  `json:"Service"`
	Name         string  `json:"Name"`
	DebugDetails string  `json:"DebugDetails"`
	DisplayText  string  `json:"DisplayText"`
	InnerMessage *string `json:"InnerMessage"`
}

// Error is the structured failure value returned by the client.
//
// It is immutable after construction. Code is unique per construction site
// and works as a coarse fingerprint of where the failure was detected.
type Error struct {
	err           error
	msg           string
	errType       Type
	code          int
	serviceErrors []ServiceMessage
	info          any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.err != nil {
		return fmt.Sprintf("%s (%d): %s: %v", Name, e.code, e.msg, e.err)
	}

	return fmt.Sprintf("%s (%d): %s", Name, e.code, e.msg)
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %d, Message: %s, Service Errors: %d, Underlying Error: %v",
		e.errType.String(),
		e.code,
		e.msg,
		len(e.serviceErrors),
		e.err,
	)
}

// Name returns the classification label, always equal to the Name constant.
func (e *Error) Name() string {
	return Name
}

// Code returns the call-site code.
func (e *Error) Code() int {
	return e.code
}

// Msg returns the human-readable message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns where the error originated.
func (e *Error) Type() Type {
	return e.errType
}

// ServiceErrors returns a copy of the service-reported messages.
// It is empty when the failure originated locally.
func (e *Error) ServiceErrors() []ServiceMessage {
	out := make([]ServiceMessage, len(e.serviceErrors))
	copy(out, e.serviceErrors)
	return out
}

// Info returns the context attached at construction, or nil.
func (e *Error) Info() any {
	return e.info
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error type to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.errType {
	case TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeService, TypeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates a validation error for a failure detected locally.
func New(code int, msg string, info any) *Error {
	return &Error{msg: msg, errType: TypeValidation, code: code, info: info}
}

// NewService creates an error for a call the remote service rejected.
func NewService(code int, msg string, serviceErrors []ServiceMessage, info any) *Error {
	msgs := make([]ServiceMessage, len(serviceErrors))
	copy(msgs, serviceErrors)

	return &Error{msg: msg, errType: TypeService, code: code, serviceErrors: msgs, info: info}
}

// Wrap creates a transport error around err.
func Wrap(err error, code int, msg string, info any) *Error {
	return &Error{err: err, msg: msg, errType: TypeTransport, code: code, info: info}
}
