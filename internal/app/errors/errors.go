package errors

import "net/http"

// ResponseCodeError pairs an underlying error with a user-facing message and
// a status-like code. Validation failures carry 4xx codes, remote failures
// keep whatever code the backend reported.
type ResponseCodeError struct {
	err  error
	msg  string
	code int
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: http.StatusInternalServerError}
}
func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}
func (rce ResponseCodeError) Error() string {
	return rce.err.Error()
}
func (rce ResponseCodeError) Msg() string {
	return rce.msg
}
func (rce ResponseCodeError) Code() int {
	return rce.code
}
func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}
