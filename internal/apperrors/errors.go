package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrLookup indicates that the upstream rate provider did not return a usable rate.
// Transport failures, error statuses, malformed payloads and missing pairs all map here.
var ErrLookup = errors.New("rate lookup failed")

// ErrNumeric indicates that a computation would produce an undefined result,
// e.g. a deviation against a zero average.
var ErrNumeric = errors.New("numeric error")
