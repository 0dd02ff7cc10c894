package domain

import "fmt"

// Error carrega um código estável de API junto do erro de origem.
// Message é sempre segura para o cliente; Err fica apenas nos logs.
type Error struct {
	Err     error
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(err error, code, message string) *Error {
	return &Error{
		Err:     err,
		Code:    code,
		Message: message,
	}
}
