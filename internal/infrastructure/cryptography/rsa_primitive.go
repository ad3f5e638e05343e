package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
)

// EncryptRaw returns m^e mod n without any bound check on m.
// Messages m >= n are silently reduced: the ciphertext decrypts to m mod n, not m.
func EncryptRaw(m *big.Int, publicKey cryptoalg.PublicKey) (*big.Int, error) {
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("message integer cannot be nil")
	}
	if m.Sign() < 0 {
		return nil, cryptoalg.ErrNegativeInteger
	}
	return new(big.Int).Exp(m, publicKey.Exponent, publicKey.Modulus), nil
}

// DecryptRaw returns c^d mod n
func DecryptRaw(c *big.Int, keyPair *cryptoalg.KeyPair) (*big.Int, error) {
	if keyPair == nil {
		return nil, fmt.Errorf("key pair cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("ciphertext cannot be nil")
	}
	if c.Sign() < 0 {
		return nil, cryptoalg.ErrNegativeInteger
	}
	return new(big.Int).Exp(c, keyPair.PrivateExponent(), keyPair.Modulus()), nil
}
