package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid request")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)
