// Package cryptoalg defines the core interfaces and structures of the RSA messenger,
// such as key pairs, public keys and text encodings, together with the contracts
// for prime selection, key generation and the bit-block text codec.
package cryptoalg
