package testutil

import (
	"fmt"
	"math/big"
)

// PrimeRequest records the bounds of one RandomPrime call
type PrimeRequest struct {
	Lower *big.Int
	Upper *big.Int
}

// SequencePrimeSource hands out a fixed sequence of primes and records every request.
// It lets key generation tests force collisions and reproduce known vectors.
type SequencePrimeSource struct {
	Primes   []*big.Int
	Requests []PrimeRequest
	next     int
}

// NewSequencePrimeSource creates a SequencePrimeSource from int64 values
func NewSequencePrimeSource(primes ...int64) *SequencePrimeSource {
	source := &SequencePrimeSource{}
	for _, p := range primes {
		source.Primes = append(source.Primes, big.NewInt(p))
	}
	return source
}

// RandomPrime returns the next prime of the sequence, ignoring the bounds
func (s *SequencePrimeSource) RandomPrime(lower, upper *big.Int) (*big.Int, error) {
	s.Requests = append(s.Requests, PrimeRequest{
		Lower: new(big.Int).Set(lower),
		Upper: new(big.Int).Set(upper),
	})
	if s.next >= len(s.Primes) {
		return nil, fmt.Errorf("prime sequence exhausted after %d primes", len(s.Primes))
	}
	p := s.Primes[s.next]
	s.next++
	return new(big.Int).Set(p), nil
}
