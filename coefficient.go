package pi

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It holds the coefficients of decimals and the slow-path
// state of the spigot generator.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [64]*bint {
	var cache [64]*bint
	for i := range cache {
		cache[i] = newBintFromPow10(i)
	}
	return cache
}()

// newBintFromPow10 creates a *big.Int equal to 10^power.
func newBintFromPow10(power int) *bint {
	z := (*bint)(new(big.Int))
	z.pow10(power)
	return z
}

// newBintFromInt64 creates a *big.Int equal to x.
func newBintFromInt64(x int64) *bint {
	z := (*bint)(new(big.Int))
	z.setInt64(x)
	return z
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// setString sets z to the base-10 value of s.
// s must consist of decimal digits only.
func (z *bint) setString(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// int64 converts *big.Int to int64.
// If z cannot be represented as int64, the result is undefined.
func (z *bint) int64() int64 {
	return (*big.Int)(z).Int64()
}

// isInt64 reports whether z can be represented as int64.
func (z *bint) isInt64() bool {
	return (*big.Int)(z).IsInt64()
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calcualtes z = x + 1.
func (z *bint) inc(x *bint) {
	y := bpow10[0]
	z.add(x, y)
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quoRem calculates z and r such that x = z * y + r.
// Both x and y must be non-negative.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// quoHalfUp calculates z = x / y and rounds result using "half up" rule,
// that is, ties are rounded away from zero.
// Both x and y must be non-negative.
func (z *bint) quoHalfUp(x, y *bint) {
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	r.dbl(r) // r = r * 2
	if r.cmp(y) >= 0 {
		z.inc(z) // z = z + 1
	}
}

// powOf10 returns 10^shift, either from the cache or freshly computed.
func powOf10(shift int) *bint {
	if shift < len(bpow10) {
		return bpow10[shift]
	}
	return newBintFromPow10(shift)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	z.mul(x, powOf10(shift))
}

// rshDown (Right Shift) calculates z = x / 10^shift and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	r := getBint()
	defer putBint(r)
	z.quoRem(x, powOf10(shift), r)
}

// rshHalfUp (Right Shift) calculates z = x / 10^shift and
// rounds result using "half up" rule.
func (z *bint) rshHalfUp(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	z.quoHalfUp(x, powOf10(shift))
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
//
// z.prec() is significantly faster than len(z.string()),
// if z has less than len(bpow10) digits.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(z.string())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
