//go:build unit
// +build unit

package app

import (
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerator is a mock implementation of KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) GenerateKeyPair(bitLength int) (*cryptoalg.KeyPair, error) {
	args := m.Called(bitLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}

func (m *MockKeyGenerator) KeyPairFromPrimes(p, q *big.Int) (*cryptoalg.KeyPair, error) {
	args := m.Called(p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}

func (m *MockKeyGenerator) KeyPairFromPrimesWithExponent(p, q, e *big.Int) (*cryptoalg.KeyPair, error) {
	args := m.Called(p, q, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}

// MockTextCodec is a mock implementation of TextCodec
type MockTextCodec struct {
	mock.Mock
}

func (m *MockTextCodec) Encode(text string, encoding cryptoalg.Encoding) (*big.Int, error) {
	args := m.Called(text, encoding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextCodec) Decode(value *big.Int, encoding cryptoalg.Encoding) (string, error) {
	args := m.Called(value, encoding)
	return args.String(0), args.Error(1)
}
