package constants

import "net/http"

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrBackendUnreachable = NewCodedError("backend unreachable", http.StatusServiceUnavailable)
	ErrBackendStatus      = NewCodedError("backend returned error", http.StatusBadGateway)
	ErrMissingField       = NewCodedError("missing field in backend data", http.StatusBadGateway)

	ErrEmptyDataset          = NewCodedError("dataset has no samples", http.StatusUnprocessableEntity)
	ErrDivisionByZero        = NewCodedError("investment cost must not be zero", http.StatusUnprocessableEntity)
	ErrInvalidFinancialInput = NewCodedError("investment cost and electricity price must be finite numbers", http.StatusUnprocessableEntity)
	ErrMissingFinancials     = NewCodedError("payback period is absent and no placeholder is configured", http.StatusUnprocessableEntity)

	ErrBadRequest = NewCodedError("bad request", http.StatusBadRequest)
)
