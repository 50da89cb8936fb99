package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrMalformedInput   = errors.New("malformed input")
	ErrRowCountMismatch = errors.New("input files have different row counts")
	ErrReportNotFound   = errors.New("proxy report not found")
	ErrMalformedReport  = errors.New("malformed proxy report")
	ErrUsage            = errors.New("usage")
)

// Error attaches context to one of the sentinel errors above while keeping it matchable with errors.Is.
type Error struct {
	error

	msg string
}

func Errorf(err error, msg string, args ...interface{}) error {
	return &Error{
		error: err,
		msg:   fmt.Sprintf("%v: %s", err, fmt.Sprintf(msg, args...)),
	}
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.error
}
