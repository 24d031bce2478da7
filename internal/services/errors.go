package services

import "errors"

// ValidationError marks user-correctable input problems. Handlers surface
// the message to the form instead of treating it as a server failure.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

var (
	ErrDuplicateTag = ValidationError("An asset with this tag already exists.")
	ErrNotFound     = errors.New("not found")
)
