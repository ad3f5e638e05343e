//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyRequest struct {
	KeyBits int `validate:"keybits"`
}

func TestKeyBitsValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("keybits", KeyBitsValidation))

	for _, bits := range []int{512, 1024, 2048, 3072, 4096} {
		assert.NoError(t, validate.Struct(keyRequest{KeyBits: bits}), "expected %d to be accepted", bits)
	}
	for _, bits := range []int{0, 16, 511, 2047, 8192} {
		assert.Error(t, validate.Struct(keyRequest{KeyBits: bits}), "expected %d to be rejected", bits)
	}
}
