package services

import "errors"

// ErrNotFound is returned when an operation targets an id that does not
// exist. Handlers translate it to a 404 instead of the generic 500 envelope.
var ErrNotFound = errors.New("record not found")
