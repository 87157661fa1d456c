package pi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a precondition on the input
	// of an operation is violated: a negative iteration count, a negative
	// precision or scale, or a non-positive digit count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by [Decimal.Quo] when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
)

var (
	errScaleRange      = fmt.Errorf("scale out of range: %w", ErrInvalidArgument)
	errIterationsRange = fmt.Errorf("iterations out of range: %w", ErrInvalidArgument)
	errDigitsRange     = fmt.Errorf("digit count out of range: %w", ErrInvalidArgument)
	errInvalidDecimal  = errors.New("invalid decimal")
	errExponentRange   = errors.New("exponent out of range")
)
