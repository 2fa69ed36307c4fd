package store

import (
	"errors"
	"fmt"
)

// Code adalah alasan penolakan yang bisa dibaca mesin. Semua mutasi
// fail closed: state tidak berubah, caller dapat kode ini.
type Code string

const (
	CodeNotFound           Code = "not-found"
	CodeInvalidTransition  Code = "invalid-transition"
	CodePreconditionNotMet Code = "precondition-not-met"
	CodeAlreadyAssigned    Code = "already-assigned"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf -> kode taksonomi dari err, "" kalau bukan error store
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
