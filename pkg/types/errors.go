package types

import "errors"

// Link store errors.
var (
	ErrInvalidInput    = errors.New("name and url must be non-empty UTF-8 text")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Import validation errors. Each is returned wrapped with detail; test with
// errors.Is.
var (
	ErrParse  = errors.New("input is not valid JSON")
	ErrShape  = errors.New("input is not a list of links")
	ErrRecord = errors.New("link record is missing id, name or url")
)

// IsValidation reports whether err is one of the import validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrShape) || errors.Is(err, ErrRecord)
}
