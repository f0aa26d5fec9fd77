package order

import "errors"

var (
	ErrMissingParameters = errors.New("required payment parameters are missing")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrUnauthorized      = errors.New("unauthorized")
)
