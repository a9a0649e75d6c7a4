package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrInvalidUsername = errors.New("username contains invalid characters")
)
