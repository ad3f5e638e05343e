package cryptoalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInvertible is returned when a value has no modular inverse because it is not coprime to the modulus.
	ErrNotInvertible = errors.New("value is not invertible modulo m")

	// ErrMissingPublicKey is returned when encryption is attempted before a partner public key is set.
	ErrMissingPublicKey = errors.New("public key from partner is required")

	// ErrCharacterOutOfRange is returned when a code point does not fit the block width of the encoding.
	ErrCharacterOutOfRange = errors.New("character out of range for encoding")

	// ErrMessageTooLarge is returned when the encoded message is not smaller than the modulus.
	// Longer messages must be split by the caller so each block stays below n.
	ErrMessageTooLarge = errors.New("encoded message is not smaller than the modulus")

	// ErrIncompleteKeyMaterial is returned when only part of n, e and d is supplied.
	ErrIncompleteKeyMaterial = errors.New("modulus, public exponent and private exponent must be supplied together")

	// ErrInvalidKeyMaterial is returned when key material is non-positive or inconsistent.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrInvalidPrimes is returned when the primes cannot form a usable key pair.
	ErrInvalidPrimes = errors.New("invalid primes")

	// ErrInvalidExponent is returned when a public exponent candidate is not greater than 1.
	ErrInvalidExponent = errors.New("public exponent must be greater than 1")

	// ErrInvalidBitLength is returned when the requested modulus size is too small.
	ErrInvalidBitLength = errors.New("invalid key bit length")

	// ErrPrimeCollision is returned when no prime distinct from p was found within the retry budget.
	ErrPrimeCollision = errors.New("could not find two distinct primes")

	// ErrNoPrimeInRange is returned when the prime source finds no prime within the requested bounds.
	ErrNoPrimeInRange = errors.New("no prime in range")

	// ErrInvalidRange is returned when the prime search bounds are empty or below 2.
	ErrInvalidRange = errors.New("invalid prime search range")

	// ErrInvalidEncoding is returned when an encoding has an unusable name or block width.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidText is returned when the text to encode is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")

	// ErrInvalidCodePoint is returned when a decoded block is not a valid Unicode scalar value.
	ErrInvalidCodePoint = errors.New("decoded block is not a valid code point")

	// ErrNegativeInteger is returned when a negative integer is handed to the codec or the RSA primitive.
	ErrNegativeInteger = errors.New("integer must not be negative")

	// ErrCiphertextOutOfRange is returned when a ciphertext is not in [0, n).
	ErrCiphertextOutOfRange = errors.New("ciphertext out of range")
)

// CharacterOutOfRangeError describes the character that did not fit the encoding.
type CharacterOutOfRangeError struct {
	Position   int
	CodePoint  rune
	BlockWidth int
}

func (e *CharacterOutOfRangeError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at position %d does not fit in %d bits",
		e.CodePoint, e.CodePoint, e.Position, e.BlockWidth)
}

// Is implements errors.Is for sentinel error matching.
func (e *CharacterOutOfRangeError) Is(target error) bool {
	return target == ErrCharacterOutOfRange
}
