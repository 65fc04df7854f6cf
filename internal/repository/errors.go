package repository

import "errors"

// ErrNotFound is returned when the targeted document does not exist.
// Handlers map it to a 404.
var ErrNotFound = errors.New("not found")
