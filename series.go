package pi

import "fmt"

// LeibnizFloat64 returns the partial sum of the first iterations terms of the
// Leibniz series
//
//	4/1 - 4/3 + 4/5 - 4/7 + ...
//
// evaluated in float64 arithmetic.
// The series converges slowly: the truncation error is of order 1/iterations,
// so the result is a low-accuracy reference rather than a production method.
// Zero iterations yield 0.
//
// LeibnizFloat64 returns an error if iterations is negative.
func LeibnizFloat64(iterations int) (float64, error) {
	if iterations < 0 {
		return 0, fmt.Errorf("LeibnizFloat64(%v) failed: %w", iterations, errIterationsRange)
	}
	var sum float64
	for i := 0; i < iterations; i++ {
		den := float64(i)*2 + 1
		if i%2 == 1 {
			sum += -4.0 / den
		} else {
			sum += 4.0 / den
		}
	}
	return sum, nil
}

// LeibnizDecimal returns the same partial sum as [LeibnizFloat64] computed
// with fixed-point decimals.
// Each term 4/(2i+1) is rounded to precision digits after the decimal point
// using "half up" rule at the point of division.
// The terms are then accumulated exactly, so the rounding error of the
// result is bounded by iterations * 10^-precision.
// With zero precision every term is rounded to an integer.
// The scale of the result is always equal to precision.
//
// LeibnizDecimal returns an error if iterations or precision is negative.
func LeibnizDecimal(iterations, precision int) (Decimal, error) {
	switch {
	case iterations < 0:
		return Decimal{}, fmt.Errorf("LeibnizDecimal(%v, %v) failed: %w", iterations, precision, errIterationsRange)
	case precision < 0:
		return Decimal{}, fmt.Errorf("LeibnizDecimal(%v, %v) failed: %w", iterations, precision, errScaleRange)
	}
	four := MustNew(4, 0)
	sum := MustNew(0, precision)
	for i := 0; i < iterations; i++ {
		den := MustNew(int64(i)*2+1, 0)
		term, err := four.Quo(den, precision)
		if err != nil {
			return Decimal{}, fmt.Errorf("LeibnizDecimal(%v, %v) failed: term %v: %w", iterations, precision, i, err) // unexpected by design
		}
		if i%2 == 1 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
	}
	return sum, nil
}
