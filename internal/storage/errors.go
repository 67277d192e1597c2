package storage

import "errors"

// Storage errors shared by every TradeStore implementation.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when inserting a record whose ID
	// already exists. Journal records are never updated in place.
	ErrDuplicateID = errors.New("duplicate trade id")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
