package app

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"

	"github.com/google/uuid"
)

// Receiver owns a key pair, hands out its public view and decrypts messages sent to it.
type Receiver struct {
	id      uuid.UUID
	keyPair *cryptoalg.KeyPair
	codec   cryptoalg.TextCodec
	logger  logger.Logger
}

// NewReceiver creates a Receiver with a freshly generated key pair of roughly bitLength bits
func NewReceiver(generator cryptoalg.KeyGenerator, bitLength int, codec cryptoalg.TextCodec, logger logger.Logger) (*Receiver, error) {
	keyPair, err := generator.GenerateKeyPair(bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return newReceiver(keyPair, codec, logger), nil
}

// NewReceiverFromPrimes creates a Receiver whose key pair is derived from the primes p and q
func NewReceiverFromPrimes(generator cryptoalg.KeyGenerator, p, q *big.Int, codec cryptoalg.TextCodec, logger logger.Logger) (*Receiver, error) {
	keyPair, err := generator.KeyPairFromPrimes(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key pair: %w", err)
	}
	return newReceiver(keyPair, codec, logger), nil
}

// NewReceiverFromKeyPair creates a Receiver around existing key material
func NewReceiverFromKeyPair(keyPair *cryptoalg.KeyPair, codec cryptoalg.TextCodec, logger logger.Logger) (*Receiver, error) {
	if keyPair == nil {
		return nil, cryptoalg.ErrIncompleteKeyMaterial
	}
	return newReceiver(keyPair, codec, logger), nil
}

func newReceiver(keyPair *cryptoalg.KeyPair, codec cryptoalg.TextCodec, logger logger.Logger) *Receiver {
	r := &Receiver{
		id:      uuid.New(),
		keyPair: keyPair,
		codec:   codec,
		logger:  logger,
	}
	logger.Info("Receiver ", r.id, " ready with ", keyPair.BitLen(), "-bit modulus")
	return r
}

// ID identifies the receiver in log output
func (r *Receiver) ID() uuid.UUID {
	return r.id
}

// KeyPair returns the receiver's key pair
func (r *Receiver) KeyPair() *cryptoalg.KeyPair {
	return r.keyPair
}

// DerivePublicView returns an independent copy of (n, e)
func (r *Receiver) DerivePublicView() cryptoalg.PublicKey {
	return r.keyPair.PublicKey()
}

// NewSender returns a Sender bound to this receiver's public key
func (r *Receiver) NewSender() *Sender {
	sender := NewSender(r.codec, r.logger)
	partner := r.DerivePublicView()
	sender.partner = &partner
	return sender
}

// Decrypt returns the text encoded in c^d mod n
func (r *Receiver) Decrypt(c *big.Int, encoding cryptoalg.Encoding) (string, error) {
	m, err := r.DecryptInteger(c)
	if err != nil {
		return "", err
	}

	text, err := r.codec.Decode(m, encoding)
	if err != nil {
		return "", fmt.Errorf("failed to decode message: %w", err)
	}

	r.logger.Info("Receiver ", r.id, " decrypted message using ", encoding)
	return text, nil
}

// DecryptInteger returns c^d mod n for a ciphertext 0 <= c < n
func (r *Receiver) DecryptInteger(c *big.Int) (*big.Int, error) {
	if c == nil || c.Sign() < 0 || c.Cmp(r.keyPair.Modulus()) >= 0 {
		return nil, cryptoalg.ErrCiphertextOutOfRange
	}

	m, err := cryptography.DecryptRaw(c, r.keyPair)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}
	return m, nil
}
