package collections

import "errors"

var (
	ErrNonPositiveCapacity  = errors.New("capacity must be greater than zero")
	ErrLoadFactorOutOfRange = errors.New("load factor must be in range (0, 1]")
	ErrValueExisted         = errors.New("value existed")
	ErrValueNotExisted      = errors.New("value not existed")
)
