package habit

import "errors"

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrUnknownDisease = errors.New("unknown disease type")
)
