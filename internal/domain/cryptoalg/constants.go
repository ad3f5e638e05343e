package cryptoalg

// DefaultPublicExponent is the first public exponent candidate tried during key derivation
const DefaultPublicExponent = 65537

// DefaultKeyBits is the modulus size used when a receiver is created without an explicit size
const DefaultKeyBits = 2048

// MinKeyBits is the smallest modulus size accepted by the key generator
const MinKeyBits = 16

// MaxPrimeRetries bounds how often q is re-requested when it collides with p
const MaxPrimeRetries = 64

// PrimalityRounds is the number of Miller-Rabin rounds used to verify prime candidates
const PrimalityRounds = 20

// EncodingNarrow names the 7-bit ASCII encoding
const EncodingNarrow = "narrow"

// EncodingWide names the 18-bit Unicode encoding
const EncodingWide = "wide"

// NarrowBlockWidth is the number of bits per character in the narrow encoding
const NarrowBlockWidth = 7

// WideBlockWidth is the number of bits per character in the wide encoding
const WideBlockWidth = 18

// MaxBlockWidth is the number of bits needed for the largest Unicode code point (U+10FFFF)
const MaxBlockWidth = 21
