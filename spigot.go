package pi

import (
	"errors"
	"fmt"
	"math"
)

// maxFastChain is the longest chain the fast path can sweep.
// Every intermediate value of a sweep stays below 50 * chain length,
// so machine integers cannot overflow while the length is below this bound.
const maxFastChain = math.MaxInt / 64

var errChainOverflow = errors.New("chain overflow")

// SpigotDigits returns the first n decimal digits of π computed with the
// Rabinowitz–Wagon spigot algorithm.
// The first element is the integer part 3, followed by the fractional
// digits in order.
// The computation is exact: no floating-point arithmetic is involved, and
// the first m digits of SpigotDigits(n) are equal to SpigotDigits(m) for m < n.
//
// The algorithm keeps a mixed-radix chain of floor(10n/3) + 1 partial numerators.
// Each sweep over the chain releases one digit. A digit 9 cannot be released
// immediately, since a later carry may turn it into 0, so runs of nines are
// held back until the next digit that is not 9 is known.
// Once they are resolved, the nines that do not fit into n digits are
// discarded, so the result always has exactly n digits.
//
// The time complexity is quadratic in n and the memory is linear in n.
//
// SpigotDigits returns an error if n is not positive or if the chain for n
// digits cannot be addressed.
func SpigotDigits(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("SpigotDigits(%v) failed: %w", n, errDigitsRange)
	}
	size, ok := chainLength(n)
	if !ok {
		return nil, fmt.Errorf("SpigotDigits(%v) failed: %w", n, errDigitsRange)
	}
	digits, err := spigotFast(n, size)
	if err != nil {
		digits = spigotSlow(n, size)
	}
	return digits, nil
}

// chainLength calculates floor(10n/3) + 1 and checks overflow.
func chainLength(n int) (int, bool) {
	q, r := n/3, n%3
	if q > (math.MaxInt-7)/10 {
		return 0, false
	}
	return q*10 + r*10/3 + 1, true
}

// digitBuffer collects released digits.
// It holds back the latest digit and any run of nines after it, since all of
// them may still change when the next sweep produces a carry.
type digitBuffer struct {
	digits []int
	n      int // requested number of digits
	held   int // latest digit that is not 9, not yet released
	nines  int // number of nines held back after held
}

func newDigitBuffer(n int) *digitBuffer {
	return &digitBuffer{digits: make([]int, 0, n), n: n}
}

// push consumes the value x left at the lowest chain position after a sweep.
// x/10 is the carry into the held digit and x%10 is the next digit.
// push reports whether all requested digits have been released.
func (b *digitBuffer) push(x int) bool {
	next := x % 10
	if next == 9 {
		b.nines++
		return false
	}
	b.digits = append(b.digits, b.held+x/10)
	for ; b.nines > 0; b.nines-- {
		if len(b.digits) == b.n {
			continue
		}
		if x >= 10 {
			b.digits = append(b.digits, 0)
		} else {
			b.digits = append(b.digits, 9)
		}
	}
	b.held = next
	return len(b.digits) == b.n
}

// spigotFast runs the algorithm over a chain of machine integers.
// It returns an error if the chain is too long for machine arithmetic.
func spigotFast(n, size int) ([]int, error) {
	if size > maxFastChain {
		return nil, errChainOverflow
	}
	chain := make([]int, size)
	buf := newDigitBuffer(n)
	for first := true; ; first = false {
		var q, x int
		k := 2*size - 1 // denominator of the current position
		for c := size; c > 0; c-- {
			if first {
				x = 20
			} else {
				x = 10 * chain[c-1]
			}
			x += q * c
			q = x / k
			chain[c-1] = x - q*k
			k -= 2
		}
		if buf.push(x) {
			return buf.digits, nil
		}
	}
}

// spigotSlow runs the same algorithm as spigotFast over a chain of
// unbounded integers.
func spigotSlow(n, size int) []int {
	var (
		chain = make([]bint, size)
		buf   = newDigitBuffer(n)
		seed  = newBintFromInt64(20)
		ten   = newBintFromInt64(10)
		x     = new(bint)
		q     = new(bint)
		k     = new(bint)
		w     = new(bint)
		t     = new(bint)
	)
	for first := true; ; first = false {
		q.setInt64(0)
		for c := size; c > 0; c-- {
			a := &chain[c-1]
			if first {
				x.setBint(seed)
			} else {
				x.mul(a, ten)
			}
			w.setInt64(int64(c))
			t.mul(q, w)
			x.add(x, t)
			k.setInt64(int64(c)*2 - 1)
			q.quoRem(x, k, a)
		}
		// The lowest position has denominator 1, so x is at most a few dozen.
		if !x.isInt64() {
			panic(fmt.Sprintf("spigotSlow(%v, %v) failed: sweep result %v out of range", n, size, x.string())) // unexpected by design
		}
		if buf.push(int(x.int64())) {
			return buf.digits
		}
	}
}
