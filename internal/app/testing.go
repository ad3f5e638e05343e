//go:build unit
// +build unit

package app

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestParties holds the dependencies shared by the party tests
type TestParties struct {
	Codec     cryptoalg.TextCodec
	Generator cryptoalg.KeyGenerator
	Logger    logger.Logger
}

// SetupTestParties wires a text codec and a crypto/rand backed key generator
func SetupTestParties(t *testing.T) *TestParties {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	primes, err := cryptography.NewPrimeSource(log)
	require.NoError(t, err)

	generator, err := cryptography.NewKeyGenerator(primes, log)
	require.NoError(t, err)

	return &TestParties{
		Codec:     cryptography.NewTextCodec(),
		Generator: generator,
		Logger:    log,
	}
}

// TextbookKeyPair returns the n=3233, e=17, d=413 key pair built from p=61, q=53
func TextbookKeyPair(t *testing.T) *cryptoalg.KeyPair {
	t.Helper()

	keyPair, err := cryptoalg.NewKeyPair(big.NewInt(3233), big.NewInt(17), big.NewInt(413))
	require.NoError(t, err)
	return keyPair
}
