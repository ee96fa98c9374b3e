package health

import "errors"

var (
	ErrProfileNotFound = errors.New("health profile not found")
	ErrUnknownDisease  = errors.New("unknown disease type")
)
