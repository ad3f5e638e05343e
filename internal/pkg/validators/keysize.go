package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeyBitsValidation validates the RSA modulus size requested for key generation.
func KeyBitsValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 512, 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
