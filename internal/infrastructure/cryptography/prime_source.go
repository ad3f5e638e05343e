package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"
)

var two = big.NewInt(2)

// randomPrimeSource implements cryptoalg.PrimeSource on top of a random reader.
// It picks a uniform point in the range and walks to the nearest prime inside it.
type randomPrimeSource struct {
	reader io.Reader
	logger logger.Logger
}

// NewPrimeSource creates a PrimeSource reading from crypto/rand, which is safe for concurrent use
func NewPrimeSource(logger logger.Logger) (cryptoalg.PrimeSource, error) {
	return NewPrimeSourceWithReader(rand.Reader, logger)
}

// NewPrimeSourceWithReader creates a PrimeSource reading random bytes from reader
func NewPrimeSourceWithReader(reader io.Reader, logger logger.Logger) (cryptoalg.PrimeSource, error) {
	if reader == nil {
		return nil, fmt.Errorf("random reader cannot be nil")
	}
	return &randomPrimeSource{
		reader: reader,
		logger: logger,
	}, nil
}

// RandomPrime returns a prime p with lower <= p < upper
func (s *randomPrimeSource) RandomPrime(lower, upper *big.Int) (*big.Int, error) {
	if lower == nil || upper == nil {
		return nil, fmt.Errorf("%w: bounds cannot be nil", cryptoalg.ErrInvalidRange)
	}

	low := new(big.Int).Set(lower)
	if low.Cmp(two) < 0 {
		low.Set(two)
	}
	if low.Cmp(upper) >= 0 {
		return nil, fmt.Errorf("%w: [%s, %s) contains no candidate", cryptoalg.ErrInvalidRange, lower, upper)
	}

	span := new(big.Int).Sub(upper, low)
	offset, err := rand.Int(s.reader, span)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
	}
	start := offset.Add(offset, low)

	if p := nextPrime(start, upper); p != nil {
		return p, nil
	}
	if p := previousPrime(start, low); p != nil {
		return p, nil
	}

	s.logger.Warn("No prime found in requested range of width ", span.BitLen(), " bits")
	return nil, fmt.Errorf("%w: [%s, %s)", cryptoalg.ErrNoPrimeInRange, lower, upper)
}

// nextPrime returns the smallest prime p with start <= p < upper, or nil
func nextPrime(start, upper *big.Int) *big.Int {
	candidate := new(big.Int).Set(start)
	if candidate.Cmp(two) == 0 {
		return candidate
	}
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, one)
	}
	for ; candidate.Cmp(upper) < 0; candidate.Add(candidate, two) {
		if candidate.ProbablyPrime(cryptoalg.PrimalityRounds) {
			return candidate
		}
	}
	return nil
}

// previousPrime returns the largest prime p with lower <= p < start, or nil
func previousPrime(start, lower *big.Int) *big.Int {
	candidate := new(big.Int).Sub(start, one)
	if candidate.Cmp(two) > 0 && candidate.Bit(0) == 0 {
		candidate.Sub(candidate, one)
	}
	for ; candidate.Cmp(lower) >= 0 && candidate.Cmp(two) > 0; candidate.Sub(candidate, two) {
		if candidate.ProbablyPrime(cryptoalg.PrimalityRounds) {
			return candidate
		}
	}
	if candidate.Cmp(two) == 0 && lower.Cmp(two) <= 0 {
		return candidate
	}
	return nil
}
