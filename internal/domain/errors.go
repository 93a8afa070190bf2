package domain

import "errors"

// ErrValidation marks a rejected submission. No record is created; the
// caller surfaces it as a warning rather than a failure.
var ErrValidation = errors.New("validation failed")
