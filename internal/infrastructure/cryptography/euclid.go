package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b) for a, b >= 0.
// The remainder sequence is walked iteratively, so operand size does not affect stack depth.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		// (oldR, r) = (r, oldR - quotient*r)
		tmp.Mul(quotient, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		// (oldS, s) = (s, oldS - quotient*s)
		tmp.Mul(quotient, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		// (oldT, t) = (t, oldT - quotient*t)
		tmp.Mul(quotient, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) such that (x*a) mod m = 1.
// It returns ErrNotInvertible when a and m are not coprime.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1", cryptoalg.ErrNotInvertible)
	}

	reduced := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(reduced, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(a, m) = %s", cryptoalg.ErrNotInvertible, g)
	}

	return x.Mod(x, m), nil
}

// gcd returns the greatest common divisor of a and b without modifying either
func gcd(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	return g
}

// lcm returns a*b / gcd(a, b)
func lcm(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Div(product, gcd(a, b))
}
