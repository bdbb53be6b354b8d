package repository

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrMalformedID = errors.New("malformed id")
)
