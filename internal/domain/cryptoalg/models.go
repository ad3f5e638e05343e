package cryptoalg

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the part of a key pair that is shared with a sender.
type PublicKey struct {
	Modulus  *big.Int `validate:"required"`
	Exponent *big.Int `validate:"required"`
}

// Validate checks that both the modulus and the exponent are set and positive
func (k PublicKey) Validate() error {
	if err := validator.New().Struct(k); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingPublicKey, validationMessages(err))
	}
	if k.Modulus.Sign() <= 0 || k.Exponent.Sign() <= 0 {
		return fmt.Errorf("%w: modulus and exponent must be positive", ErrInvalidKeyMaterial)
	}
	return nil
}

// Clone returns a deep copy of the public key
func (k PublicKey) Clone() PublicKey {
	return PublicKey{
		Modulus:  cloneInt(k.Modulus),
		Exponent: cloneInt(k.Exponent),
	}
}

// KeyPair holds the modulus n, the public exponent e and the private exponent d.
// The values are copied on the way in and on the way out so a KeyPair never changes after creation.
type KeyPair struct {
	modulus         *big.Int
	publicExponent  *big.Int
	privateExponent *big.Int
}

type keyMaterial struct {
	Modulus         *big.Int `validate:"required"`
	PublicExponent  *big.Int `validate:"required"`
	PrivateExponent *big.Int `validate:"required"`
}

// NewKeyPair creates a KeyPair from existing key material.
// All three values must be supplied; partial material is rejected rather than completed.
func NewKeyPair(n, e, d *big.Int) (*KeyPair, error) {
	if err := validator.New().Struct(keyMaterial{Modulus: n, PublicExponent: e, PrivateExponent: d}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteKeyMaterial, validationMessages(err))
	}
	if n.Sign() <= 0 || e.Sign() <= 0 || d.Sign() <= 0 {
		return nil, fmt.Errorf("%w: n, e and d must be positive", ErrInvalidKeyMaterial)
	}
	if e.Cmp(n) >= 0 || d.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: exponents must be smaller than the modulus", ErrInvalidKeyMaterial)
	}

	return &KeyPair{
		modulus:         cloneInt(n),
		publicExponent:  cloneInt(e),
		privateExponent: cloneInt(d),
	}, nil
}

// Modulus returns a copy of n
func (k *KeyPair) Modulus() *big.Int {
	return cloneInt(k.modulus)
}

// PublicExponent returns a copy of e
func (k *KeyPair) PublicExponent() *big.Int {
	return cloneInt(k.publicExponent)
}

// PrivateExponent returns a copy of d
func (k *KeyPair) PrivateExponent() *big.Int {
	return cloneInt(k.privateExponent)
}

// BitLen returns the size of the modulus in bits
func (k *KeyPair) BitLen() int {
	return k.modulus.BitLen()
}

// PublicKey returns an independent snapshot of (n, e)
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey{
		Modulus:  cloneInt(k.modulus),
		Exponent: cloneInt(k.publicExponent),
	}
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func validationMessages(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Sprintf("%v", messages)
	}
	return err.Error()
}
