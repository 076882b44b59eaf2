package model

import "errors"

var (
	// ErrPartyNotFound indicates that the requested party does not exist.
	ErrPartyNotFound = errors.New("party not found")
	// ErrInvalidEmail indicates that the provided email is empty.
	ErrInvalidEmail = errors.New("invalid email")
)
