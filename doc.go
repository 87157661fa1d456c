/*
Package pi implements three independent methods for computing π.
Each method has its own numeric semantics and failure modes.

# Methods

  - [LeibnizFloat64]: a partial sum of the Leibniz series in float64
    arithmetic. It is fast, and its accuracy is limited by both truncation
    and binary rounding.
  - [LeibnizDecimal]: the same partial sum in fixed-point decimal
    arithmetic, with every term rounded half up to a chosen number of digits.
  - [SpigotDigits]: the Rabinowitz–Wagon spigot algorithm, which produces
    exact decimal digits one at a time without any rounding error.

All methods are pure and stateless.
Every call owns its working storage, so the functions are safe for concurrent
use by multiple goroutines.

# Decimal

[Decimal] is the fixed-point type used by [LeibnizDecimal].
It is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unbounded unsigned integer representing the numeric value
    of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

# Rounding

Decimals are never rounded implicitly.
[Decimal.Add], [Decimal.Sub], and [Decimal.Mul] are exact.
Rounding happens at an explicit scale in the following methods:

  - half-up rounding (ties away from zero):
    [Decimal.Quo], [Decimal.Round], and the %f verb of [Decimal.Format].
  - rounding towards zero:
    [Decimal.Trunc].

# Spigot

The spigot algorithm keeps a chain of floor(10n/3) + 1 integers.
Position i of the chain has weight i/(2i+1), which turns the series

	π = 2 + 1/3 * (2 + 2/5 * (2 + 3/7 * (2 + ...)))

into a mixed-radix number.
Each sweep multiplies the chain by 10 and normalizes it from the highest
position to the lowest, releasing one decimal digit.
Machine integers are used while they cannot overflow;
otherwise the same sweep runs over [big.Int] values.

# Errors

All functions are panic-free, except for the Must variants.
Errors are returned in the following cases:

  - Invalid Argument.
    A negative iteration count, a negative precision or scale,
    or a non-positive digit count.
    Such errors wrap [ErrInvalidArgument] and no computation is performed.

  - Division by Zero.
    [Decimal.Quo] returns an error wrapping [ErrDivisionByZero].

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package pi
