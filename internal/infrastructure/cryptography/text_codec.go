package cryptography

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
)

// textCodec implements the cryptoalg.TextCodec interface with fixed-width bit blocks
type textCodec struct{}

// NewTextCodec creates and returns a new instance of textCodec
func NewTextCodec() cryptoalg.TextCodec {
	return &textCodec{}
}

// Encode renders every code point of text as a block of encoding.BlockWidth bits and
// reads the concatenation, first character most significant, as one integer.
// The empty string encodes to 0.
func (c *textCodec) Encode(text string, encoding cryptoalg.Encoding) (*big.Int, error) {
	if err := encoding.Validate(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, cryptoalg.ErrInvalidText
	}

	width := uint(encoding.BlockWidth)
	maxCodePoint := encoding.MaxCodePoint()

	result := new(big.Int)
	block := new(big.Int)
	position := 0
	for _, r := range text {
		if r > maxCodePoint {
			return nil, &cryptoalg.CharacterOutOfRangeError{
				Position:   position,
				CodePoint:  r,
				BlockWidth: encoding.BlockWidth,
			}
		}
		result.Lsh(result, width)
		result.Or(result, block.SetInt64(int64(r)))
		position++
	}

	return result, nil
}

// Decode left-pads the binary form of m to a multiple of the block width and reads one
// character per block, most significant block first.
//
// Leading characters with code point 0 are indistinguishable from that padding, so
// Decode(Encode("\x00A")) yields "A".
func (c *textCodec) Decode(m *big.Int, encoding cryptoalg.Encoding) (string, error) {
	if err := encoding.Validate(); err != nil {
		return "", err
	}
	if m == nil {
		return "", fmt.Errorf("integer to decode cannot be nil")
	}
	if m.Sign() < 0 {
		return "", cryptoalg.ErrNegativeInteger
	}

	width := uint(encoding.BlockWidth)
	blocks := (m.BitLen() + encoding.BlockWidth - 1) / encoding.BlockWidth
	mask := big.NewInt(int64(encoding.MaxCodePoint()))

	runes := make([]rune, blocks)
	remaining := new(big.Int).Set(m)
	field := new(big.Int)
	for i := blocks - 1; i >= 0; i-- {
		r := rune(field.And(remaining, mask).Int64())
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: U+%04X in block %d", cryptoalg.ErrInvalidCodePoint, r, i)
		}
		runes[i] = r
		remaining.Rsh(remaining, width)
	}

	return string(runes), nil
}
