package service

import "errors"

var (
	// ErrNotFound signals that no record matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidMarks signals an update whose merged total marks would make
	// the percentage non-finite.
	ErrInvalidMarks = errors.New("total_marks must be greater than zero")
)
