package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"
)

// ceilingGrowth widens the q search ceiling after every collision with p
var ceilingGrowth = big.NewRat(11, 10)

// keyGenerator implements the cryptoalg.KeyGenerator interface
type keyGenerator struct {
	primes cryptoalg.PrimeSource
	logger logger.Logger
}

// NewKeyGenerator creates and returns a new instance of keyGenerator
func NewKeyGenerator(primes cryptoalg.PrimeSource, logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	if primes == nil {
		return nil, fmt.Errorf("prime source cannot be nil")
	}
	return &keyGenerator{
		primes: primes,
		logger: logger,
	}, nil
}

// GenerateKeyPair picks two distinct primes in [2^(bitLength/2), 2^(bitLength/2+1)) and derives a key pair.
// The resulting modulus therefore has bitLength+1 or bitLength+2 bits.
func (g *keyGenerator) GenerateKeyPair(bitLength int) (*cryptoalg.KeyPair, error) {
	if bitLength < cryptoalg.MinKeyBits {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d bits", cryptoalg.ErrInvalidBitLength, bitLength, cryptoalg.MinKeyBits)
	}

	half := uint(bitLength / 2)
	lower := new(big.Int).Lsh(one, half)
	upper := new(big.Int).Lsh(one, half+1)

	p, err := g.primes.RandomPrime(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("failed to pick prime p: %w", err)
	}
	q, err := g.primes.RandomPrime(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("failed to pick prime q: %w", err)
	}

	factor := new(big.Rat).Set(ceilingGrowth)
	for attempt := 0; p.Cmp(q) == 0; attempt++ {
		if attempt >= cryptoalg.MaxPrimeRetries {
			return nil, fmt.Errorf("%w after %d retries", cryptoalg.ErrPrimeCollision, attempt)
		}
		ceiling := scaleFloor(upper, factor)
		g.logger.Debug("Prime collision, retrying q with widened ceiling (attempt ", attempt+1, ")")

		q, err = g.primes.RandomPrime(lower, ceiling)
		if err != nil {
			return nil, fmt.Errorf("failed to pick prime q: %w", err)
		}
		factor.Mul(factor, ceilingGrowth)
	}

	keyPair, err := g.KeyPairFromPrimes(p, q)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Generated RSA key pair with ", keyPair.BitLen(), "-bit modulus")
	return keyPair, nil
}

// KeyPairFromPrimes derives (n, e, d) from p and q, starting the exponent search at 65537
func (g *keyGenerator) KeyPairFromPrimes(p, q *big.Int) (*cryptoalg.KeyPair, error) {
	return g.KeyPairFromPrimesWithExponent(p, q, big.NewInt(cryptoalg.DefaultPublicExponent))
}

// KeyPairFromPrimesWithExponent derives (n, e, d) from p and q with λ = lcm(p-1, q-1).
// Starting at candidate, e is decremented while it is not below λ and incremented afterwards
// until e < λ and gcd(e, λ) = 1.
func (g *keyGenerator) KeyPairFromPrimesWithExponent(p, q, candidate *big.Int) (*cryptoalg.KeyPair, error) {
	if err := validatePrimes(p, q); err != nil {
		return nil, err
	}
	if candidate == nil || candidate.Cmp(one) <= 0 {
		return nil, cryptoalg.ErrInvalidExponent
	}

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	lambda := lcm(pMinusOne, qMinusOne)
	if lambda.Cmp(two) <= 0 {
		return nil, fmt.Errorf("%w: λ(n) = %s leaves no exponent with 1 < e < λ", cryptoalg.ErrInvalidPrimes, lambda)
	}

	e := findPublicExponent(candidate, lambda)

	d, err := ModInverse(e, lambda)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keyPair, err := cryptoalg.NewKeyPair(n, e, d)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble key pair: %w", err)
	}

	g.logger.Debug("Derived key pair with public exponent ", e)
	return keyPair, nil
}

// findPublicExponent adjusts candidate until it is below lambda and coprime to it.
// λ-1 is always coprime to λ, so neither loop runs past it.
func findPublicExponent(candidate, lambda *big.Int) *big.Int {
	e := new(big.Int).Set(candidate)
	if e.Cmp(lambda) >= 0 {
		// Every value >= λ fails the bound, so the downward search starts at λ-1
		e.Sub(lambda, one)
		for !isValidExponent(e, lambda) && e.Cmp(two) > 0 {
			e.Sub(e, one)
		}
	}
	for !isValidExponent(e, lambda) {
		e.Add(e, one)
	}
	return e
}

func isValidExponent(e, lambda *big.Int) bool {
	return e.Cmp(lambda) < 0 && gcd(e, lambda).Cmp(one) == 0
}

func validatePrimes(p, q *big.Int) error {
	if p == nil || q == nil {
		return fmt.Errorf("%w: p and q must both be set", cryptoalg.ErrInvalidPrimes)
	}
	if p.Cmp(q) == 0 {
		return fmt.Errorf("%w: p and q must be distinct", cryptoalg.ErrInvalidPrimes)
	}
	if !p.ProbablyPrime(cryptoalg.PrimalityRounds) || !q.ProbablyPrime(cryptoalg.PrimalityRounds) {
		return fmt.Errorf("%w: p and q must be prime", cryptoalg.ErrInvalidPrimes)
	}
	return nil
}

// scaleFloor returns floor(x * factor)
func scaleFloor(x *big.Int, factor *big.Rat) *big.Int {
	scaled := new(big.Rat).Mul(new(big.Rat).SetInt(x), factor)
	return new(big.Int).Quo(scaled.Num(), scaled.Denom())
}
