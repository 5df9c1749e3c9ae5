package server

import (
	"errors"
	"fmt"
)

type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrNotFound
	ErrBadParamInput
	ErrInternalServerError
	ErrConflict
)

// Error error aplikasi dengan code, dipetakan ke http status di layer rest.
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}

// Message pesan untuk user, tanpa error aslinya.
func (e *Error) Message() string {
	return e.msg
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

// CodeOf code dari error (ErrUnknown kalau bukan *Error).
func CodeOf(err error) ErrorCode {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Code()
	}
	return ErrUnknown
}
