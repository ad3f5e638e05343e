package cryptoalg

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Encoding selects how many bits each character occupies in an encoded integer.
// Both parties must use the same encoding; decoding with a different one corrupts the message.
type Encoding struct {
	Name       string `validate:"required"`
	BlockWidth int    `validate:"min=1,max=21"`
}

// Narrow encodes 7-bit ASCII (code points 0-127)
var Narrow = Encoding{Name: EncodingNarrow, BlockWidth: NarrowBlockWidth}

// Wide encodes code points up to 2^18-1
var Wide = Encoding{Name: EncodingWide, BlockWidth: WideBlockWidth}

// NewEncoding creates a custom encoding and rejects block widths that are zero, negative
// or wider than the largest Unicode code point.
func NewEncoding(name string, blockWidth int) (Encoding, error) {
	enc := Encoding{Name: name, BlockWidth: blockWidth}
	if err := enc.Validate(); err != nil {
		return Encoding{}, err
	}
	return enc, nil
}

// EncodingByName resolves "narrow" or "wide"
func EncodingByName(name string) (Encoding, error) {
	switch name {
	case EncodingNarrow:
		return Narrow, nil
	case EncodingWide:
		return Wide, nil
	default:
		return Encoding{}, fmt.Errorf("%w: unknown encoding %q", ErrInvalidEncoding, name)
	}
}

// Validate checks the name and block width of the encoding
func (e Encoding) Validate() error {
	if err := validator.New().Struct(e); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, validationMessages(err))
	}
	return nil
}

// MaxCodePoint returns the largest code point that fits in one block
func (e Encoding) MaxCodePoint() rune {
	return rune(1)<<uint(e.BlockWidth) - 1
}

func (e Encoding) String() string {
	return fmt.Sprintf("%s(%d bits)", e.Name, e.BlockWidth)
}
