package pi

import "fmt"

// MustNew is like [New] but panics if the scale is negative.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, scale int) Decimal {
	f, err := d.Quo(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuo(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}

// MustLeibnizDecimal is like [LeibnizDecimal] but panics if an argument is negative.
func MustLeibnizDecimal(iterations, precision int) Decimal {
	d, err := LeibnizDecimal(iterations, precision)
	if err != nil {
		panic(fmt.Sprintf("MustLeibnizDecimal(%v, %v) failed: %v", iterations, precision, err))
	}
	return d
}

// MustSpigotDigits is like [SpigotDigits] but panics if the digit count is not positive.
func MustSpigotDigits(n int) []int {
	digits, err := SpigotDigits(n)
	if err != nil {
		panic(fmt.Sprintf("MustSpigotDigits(%v) failed: %v", n, err))
	}
	return digits
}
