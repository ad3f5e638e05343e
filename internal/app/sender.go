package app

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"
)

// Sender encrypts messages for one partner. It holds a private copy of the partner's public key, or none.
type Sender struct {
	partner *cryptoalg.PublicKey
	codec   cryptoalg.TextCodec
	logger  logger.Logger
}

// NewSender creates a Sender without a partner public key
func NewSender(codec cryptoalg.TextCodec, logger logger.Logger) *Sender {
	return &Sender{
		codec:  codec,
		logger: logger,
	}
}

// NewSenderForPublicKey creates a Sender bound to publicKey
func NewSenderForPublicKey(publicKey cryptoalg.PublicKey, codec cryptoalg.TextCodec, logger logger.Logger) (*Sender, error) {
	sender := NewSender(codec, logger)
	if err := sender.SetPartnerPublicKey(publicKey); err != nil {
		return nil, err
	}
	return sender, nil
}

// SetPartnerPublicKey stores a copy of the partner's (n, e)
func (s *Sender) SetPartnerPublicKey(publicKey cryptoalg.PublicKey) error {
	if err := publicKey.Validate(); err != nil {
		return fmt.Errorf("failed to set partner public key: %w", err)
	}
	partner := publicKey.Clone()
	s.partner = &partner
	s.logger.Info("Partner public key set with ", partner.Modulus.BitLen(), "-bit modulus")
	return nil
}

// PartnerPublicKey returns a copy of the partner public key and whether one is set
func (s *Sender) PartnerPublicKey() (cryptoalg.PublicKey, bool) {
	if s.partner == nil {
		return cryptoalg.PublicKey{}, false
	}
	return s.partner.Clone(), true
}

// Encrypt encodes text with encoding and returns m^e mod n.
// The encoded integer must stay below the partner modulus; longer texts must be split by the caller.
func (s *Sender) Encrypt(text string, encoding cryptoalg.Encoding) (*big.Int, error) {
	if s.partner == nil {
		return nil, cryptoalg.ErrMissingPublicKey
	}

	m, err := s.codec.Encode(text, encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	c, err := s.EncryptInteger(m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Encrypted message of ", utf8.RuneCountInString(text), " characters using ", encoding)
	return c, nil
}

// EncryptInteger returns m^e mod n for an already encoded message 0 <= m < n
func (s *Sender) EncryptInteger(m *big.Int) (*big.Int, error) {
	if s.partner == nil {
		return nil, cryptoalg.ErrMissingPublicKey
	}
	if m != nil && m.Cmp(s.partner.Modulus) >= 0 {
		return nil, fmt.Errorf("%w: message has %d bits, modulus has %d bits",
			cryptoalg.ErrMessageTooLarge, m.BitLen(), s.partner.Modulus.BitLen())
	}

	c, err := cryptography.EncryptRaw(m, *s.partner)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}
	return c, nil
}
