package storage

import "errors"

var (
	// ErrNotFound is returned when a referenced record id does not exist.
	ErrNotFound = errors.New("record not found")
)
