package apperror

import "errors"

type Code string

const (
	CodeValidation      Code = "validation"
	CodeNotFound        Code = "not_found"
	CodeConflict        Code = "conflict"
	CodePermission      Code = "permission"
	CodeInvalidArgument Code = "invalid_argument"
	CodeInternal        Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// Is reports whether err carries the given code. Unclassified errors count
// as CodeInternal.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}
