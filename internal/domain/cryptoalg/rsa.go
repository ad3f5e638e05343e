package cryptoalg

import "math/big"

// PrimeSource supplies random primes. Implementations shared between goroutines must be safe for concurrent use.
type PrimeSource interface {
	// RandomPrime returns a probabilistically verified prime p with lower <= p < upper.
	RandomPrime(lower, upper *big.Int) (*big.Int, error)
}

// KeyGenerator derives RSA key pairs.
type KeyGenerator interface {
	// GenerateKeyPair creates a key pair whose modulus has roughly bitLength bits.
	GenerateKeyPair(bitLength int) (*KeyPair, error)

	// KeyPairFromPrimes deterministically derives (n, e, d) from two distinct primes,
	// starting the public exponent search at DefaultPublicExponent.
	KeyPairFromPrimes(p, q *big.Int) (*KeyPair, error)

	// KeyPairFromPrimesWithExponent is KeyPairFromPrimes with a caller-chosen first exponent candidate.
	KeyPairFromPrimesWithExponent(p, q, e *big.Int) (*KeyPair, error)
}

// TextCodec maps text to integers and back using fixed-width bit blocks.
type TextCodec interface {
	// Encode concatenates the code points of text, first character most significant.
	Encode(text string, encoding Encoding) (*big.Int, error)

	// Decode splits m into blocks, most significant first, and returns the characters.
	// Leading code point 0 characters cannot be recovered and are dropped.
	Decode(m *big.Int, encoding Encoding) (string, error)
}
