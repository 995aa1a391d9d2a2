package collections

import "errors"

var (
	ErrEmptyCollection = errors.New("empty collection")
	ErrInvalidArgument = errors.New("invalid argument")
)
