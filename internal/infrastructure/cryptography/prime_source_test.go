//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPrimeSource(t *testing.T) cryptoalg.PrimeSource {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	source, err := NewPrimeSource(logger)
	require.NoError(t, err)
	return source
}

func TestPrimeSource(t *testing.T) {
	source := setupPrimeSource(t)

	t.Run("LargeRange", func(t *testing.T) {
		lower := new(big.Int).Lsh(one, 255)
		upper := new(big.Int).Lsh(one, 256)

		p, err := source.RandomPrime(lower, upper)
		require.NoError(t, err)
		assert.True(t, p.ProbablyPrime(20))
		assert.True(t, p.Cmp(lower) >= 0)
		assert.True(t, p.Cmp(upper) < 0)
	})

	t.Run("SmallRangeStaysInBounds", func(t *testing.T) {
		lower, upper := big.NewInt(100), big.NewInt(200)
		for i := 0; i < 50; i++ {
			p, err := source.RandomPrime(lower, upper)
			require.NoError(t, err)
			assert.True(t, p.ProbablyPrime(20), "%s is not prime", p)
			assert.True(t, p.Cmp(lower) >= 0 && p.Cmp(upper) < 0, "%s out of range", p)
		}
	})

	t.Run("SinglePrimeRange", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			p, err := source.RandomPrime(big.NewInt(8), big.NewInt(12))
			require.NoError(t, err)
			assert.Equal(t, int64(11), p.Int64())
		}
	})

	t.Run("TwoIsReachable", func(t *testing.T) {
		p, err := source.RandomPrime(big.NewInt(0), big.NewInt(3))
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.Int64())
	})

	t.Run("NoPrimeInRange", func(t *testing.T) {
		_, err := source.RandomPrime(big.NewInt(24), big.NewInt(29))
		assert.ErrorIs(t, err, cryptoalg.ErrNoPrimeInRange)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		_, err := source.RandomPrime(big.NewInt(10), big.NewInt(10))
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidRange)

		_, err = source.RandomPrime(big.NewInt(0), big.NewInt(2))
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidRange)
	})

	t.Run("NilBounds", func(t *testing.T) {
		_, err := source.RandomPrime(nil, big.NewInt(10))
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidRange)
	})
}

func TestPrimeSource_DeterministicReader(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	// An all-zero reader always draws offset 0, so the search starts at the lower bound
	source, err := NewPrimeSourceWithReader(bytes.NewReader(make([]byte, 64)), logger)
	require.NoError(t, err)

	p, err := source.RandomPrime(big.NewInt(90), big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, int64(97), p.Int64())
}

func TestPrimeSource_ReaderFailure(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	readErr := errors.New("entropy exhausted")
	source, err := NewPrimeSourceWithReader(iotest.ErrReader(readErr), logger)
	require.NoError(t, err)

	_, err = source.RandomPrime(big.NewInt(100), big.NewInt(200))
	assert.ErrorIs(t, err, readErr)
}

func TestNewPrimeSourceWithReader_NilReader(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	_, err := NewPrimeSourceWithReader(nil, logger)
	assert.Error(t, err)
}

func TestPreviousPrime(t *testing.T) {
	assert.Equal(t, int64(3), previousPrime(big.NewInt(4), big.NewInt(2)).Int64())
	assert.Equal(t, int64(2), previousPrime(big.NewInt(3), big.NewInt(2)).Int64())
	assert.Equal(t, int64(23), previousPrime(big.NewInt(28), big.NewInt(20)).Int64())
	assert.Nil(t, previousPrime(big.NewInt(5), big.NewInt(4)))
}
