package pi

import (
	"fmt"
	"math/big"
)

// Decimal type is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0 with a scale of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: a non-negative integer indicating the number of digits after
//     the decimal point.
//   - Coefficient: an unbounded integer value of the decimal without the
//     decimal point.
//
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// Unlike binary floating-point, the coefficient is never rounded implicitly.
// Addition, subtraction, and multiplication are exact.
// Rounding happens only in [Decimal.Quo], [Decimal.Round], and [Decimal.Trunc],
// at a scale chosen by the caller.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int   // the number of digits after the decimal point
	coef  *bint // the coefficient of the decimal, nil means 0; never mutated
}

// maxExponent limits the exponent accepted by [Parse].
const maxExponent = 1_000_000

// bzero is the coefficient of zero-valued decimals.
var bzero = newBintFromInt64(0)

func newDecimal(neg bool, coef *bint, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, errScaleRange
	}
	if coef.sign() == 0 {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: scale}, nil
}

// newDecimalFromSigned creates a decimal from a signed coefficient.
// The coefficient is consumed and must not be used afterwards.
func newDecimalFromSigned(coef *bint, scale int) Decimal {
	neg := coef.sign() < 0
	coef.abs(coef)
	d, err := newDecimal(neg, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("newDecimalFromSigned(%v, %v) failed: %v", coef.string(), scale, err)) // unexpected by design
	}
	return d
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is negative.
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("New(%v, %v) failed: %w", coef, scale, errScaleRange)
	}
	return newDecimalFromSigned(newBintFromInt64(coef), scale), nil
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// The value of coef is copied, so the caller may reuse it.
//
// NewFromBigInt returns an error if scale is negative.
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("NewFromBigInt(%v, %v) failed: %w", coef, scale, errScaleRange)
	}
	z := new(bint)
	z.setBint((*bint)(coef))
	return newDecimalFromSigned(z, scale), nil
}

// Zero returns decimal with a value 0 but the same scale as d.
func (d Decimal) Zero() Decimal {
	return Decimal{scale: d.Scale()}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal value with the same scale.
func (d Decimal) ULP() Decimal {
	return Decimal{coef: bpow10[0], scale: d.Scale()}
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse keeps trailing zeros in the fractional part to preserve scale.
// The number is never rounded: a positive exponent that moves the
// decimal point past the last digit yields an integer with scale 0.
//
// Parse returns an error if the string does not represent a valid decimal
// number or the exponent exceeds one million in magnitude.
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		digits  []byte
		scale   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hasesym bool
	)

	width = len(s)
	digits = make([]byte, 0, width)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		digits = append(digits, s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			digits = append(digits, s[pos])
			scale++
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxExponent {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("parsing %q: no coefficient: %w", s, errInvalidDecimal)
	}
	if hasesym && !hasexp {
		return Decimal{}, fmt.Errorf("parsing %q: no exponent: %w", s, errInvalidDecimal)
	}

	if eneg {
		scale = scale + exp
	} else {
		scale = scale - exp
	}

	coef := new(bint)
	if !coef.setString(string(digits)) {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal) // unexpected by design
	}
	if scale < 0 {
		coef.lsh(coef, -scale)
		scale = 0
	}
	return newDecimal(neg, coef, scale)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	intpart, frac := d.split()
	buf := make([]byte, 0, len(intpart)+len(frac)+2)
	if d.IsNeg() {
		buf = append(buf, '-')
	}
	buf = append(buf, intpart...)
	if len(frac) > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	return string(buf)
}

// split returns the digits before and after the decimal point.
// The integer part always has at least one digit.
func (d Decimal) split() (intpart, frac string) {
	s := d.bcoef().string()
	if n := d.Scale() + 1 - len(s); n > 0 {
		pad := make([]byte, n, n+len(s))
		for i := range pad {
			pad[i] = '0'
		}
		s = string(append(pad, s...))
	}
	return s[:len(s)-d.Scale()], s[len(s)-d.Scale():]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is equal to the actual scale of the decimal.
// If the precision is less than the scale, the decimal is rounded
// using "half up" rule.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Rescaling
	tzeroes := 0
	if verb == 'f' || verb == 'F' {
		scale := d.Scale()
		if p, ok := state.Precision(); ok {
			scale = p
		}
		if scale > d.Scale() {
			tzeroes = scale - d.Scale()
			scale = d.Scale()
		}
		d = d.rescale(scale, true)
	}

	// Integer and fractional digits
	intpart, frac := d.split()

	// Decimal point
	dpoint := 0
	if len(frac) > 0 || tzeroes > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(intpart) + dpoint + len(frac) + tzeroes + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, intpart...)
	if dpoint > 0 {
		buf = append(buf, '.')
	}
	buf = append(buf, frac...)
	for i := 0; i < tzeroes; i++ {
		buf = append(buf, '0')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(pi.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// bcoef returns the coefficient of d, substituting 0 for the zero value.
// The result must not be modified.
func (d Decimal) bcoef() *bint {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// scaledCoef returns a new signed coefficient of d multiplied by
// 10^(scale - d.Scale()). scale must not be less than d.Scale().
func (d Decimal) scaledCoef(scale int) *bint {
	z := new(bint)
	z.lsh(d.bcoef(), scale-d.Scale())
	if d.IsNeg() {
		z.neg(z)
	}
	return z
}

// Prec returns number of digits in the coefficient.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	return d.bcoef().prec()
}

// Coef returns a copy of the absolute value of the coefficient.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() *big.Int {
	return new(big.Int).Set((*big.Int)(d.bcoef()))
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	if d.Scale() == 0 || d.IsZero() {
		return true
	}
	q, r := getBint(), getBint()
	defer putBint(q)
	defer putBint(r)
	q.quoRem(d.bcoef(), powOf10(d.Scale()), r)
	return r.sign() == 0
}

// Round returns d that is rounded to the specified number of digits after
// the decimal point using "half up" rule: ties are rounded away from zero.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
//
// Round returns an error if the scale is negative.
func (d Decimal) Round(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("%q.Round(%v) failed: %w", d, scale, errScaleRange)
	}
	return d.rescale(scale, true), nil
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
//
// Trunc returns an error if the scale is negative.
func (d Decimal) Trunc(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("%q.Trunc(%v) failed: %w", d, scale, errScaleRange)
	}
	return d.rescale(scale, false), nil
}

// rescale changes the scale of d, rounding half up or towards zero.
// scale must be non-negative.
func (d Decimal) rescale(scale int, halfUp bool) Decimal {
	coef := new(bint)
	switch {
	case scale == d.Scale():
		return d
	case scale < d.Scale() && halfUp:
		coef.rshHalfUp(d.bcoef(), d.Scale()-scale)
	case scale < d.Scale():
		coef.rshDown(d.bcoef(), d.Scale()-scale)
	default:
		coef.lsh(d.bcoef(), scale-d.Scale())
	}
	f, err := newDecimal(d.IsNeg(), coef, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.rescale(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	f, err := newDecimal(!d.IsNeg(), d.bcoef(), d.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	f, err := newDecimal(false, d.bcoef(), d.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.Abs() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.bcoef().sign() == 0
}

// Add returns the exact sum of d and e.
// The scale of the result is the larger of the scales of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	scale := max(d.Scale(), e.Scale())
	dcoef := d.scaledCoef(scale)
	ecoef := e.scaledCoef(scale)
	dcoef.add(dcoef, ecoef)
	return newDecimalFromSigned(dcoef, scale)
}

// Sub returns the exact difference of d and e.
// The scale of the result is the larger of the scales of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
// The scale of the result is the sum of the scales of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	coef := new(bint)
	coef.mul(d.bcoef(), e.bcoef())
	f, err := newDecimal(d.IsNeg() != e.IsNeg(), coef, d.Scale()+e.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", d, e, err)) // unexpected by design
	}
	return f
}

// Quo returns the quotient of d and e rounded to the specified number of
// digits after the decimal point.
// The quotient is computed exactly and then rounded once using
// "half up" rule, that is, ties are rounded away from zero.
//
// Quo returns an error if:
//   - the scale is negative;
//   - e is 0.
func (d Decimal) Quo(e Decimal, scale int) (Decimal, error) {
	switch {
	case scale < 0:
		return Decimal{}, fmt.Errorf("computing [%v / %v] with scale %v: %w", d, e, scale, errScaleRange)
	case e.IsZero():
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}

	// d / e * 10^scale = (dcoef * 10^(escale + scale)) / (ecoef * 10^dscale)
	num := new(bint)
	num.lsh(d.bcoef(), e.Scale()+scale)
	den := new(bint)
	den.lsh(e.bcoef(), d.Scale())

	coef := new(bint)
	coef.quoHalfUp(num, den)

	return newDecimal(d.IsNeg() != e.IsNeg(), coef, scale)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}
	// General case
	scale := max(d.Scale(), e.Scale())
	return d.scaledCoef(scale).cmp(e.scaledCoef(scale))
}

// Equal returns true if d and e have the same numeric value.
// Scales are ignored, so 1.0 and 1.00 are equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// CmpTotal compares representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.Scale() < d.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// The exact flag reports whether the conversion lost no information.
func (d Decimal) Float64() (f float64, exact bool) {
	r := new(big.Rat).SetFrac((*big.Int)(d.bcoef()), (*big.Int)(powOf10(d.Scale())))
	f, exact = r.Float64()
	if d.IsNeg() {
		f = -f
	}
	return f, exact
}
