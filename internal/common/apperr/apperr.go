package apperr

import (
	"errors"
	"fmt"
)

// ============================================================
// Error Codes
// ============================================================

type Code string

const (
	NotFound           Code = "NOT_FOUND"
	InvalidInput       Code = "INVALID_INPUT"
	StorageUnavailable Code = "STORAGE_UNAVAILABLE"
	Unknown            Code = "UNKNOWN"
)

// ============================================================
// Error
// ============================================================

// Error — ошибка предметной области с машинно-читаемым кодом.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap оборачивает причину, сохраняя её для errors.Is / errors.As.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf возвращает код первой *Error в цепочке или Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// Message возвращает сообщение без причины, пригодное для ответа клиенту.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return CodeOf(err) == NotFound
}

func IsInvalidInput(err error) bool {
	return CodeOf(err) == InvalidInput
}
