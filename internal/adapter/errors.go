package adapter

import "errors"

// ErrRequestFailed is matched by every error returned from the adapter.
var ErrRequestFailed = errors.New("frontends request failed")

var (
	ErrBadRequest          = requestError("bad request")
	ErrNotFound            = requestError("not found")
	ErrConflict            = requestError("conflict")
	ErrInternalServerError = requestError("internal server error")
	ErrUnexpectedStatus    = requestError("unexpected status")
	ErrTransport           = requestError("transport failure")
	ErrMalformedResponse   = requestError("malformed response")
)

// requestError builds a sentinel that also matches ErrRequestFailed.
func requestError(msg string) error {
	return &sentinel{msg: msg}
}

type sentinel struct {
	msg string
}

func (s *sentinel) Error() string { return s.msg }

func (s *sentinel) Is(target error) bool { return target == ErrRequestFailed }
