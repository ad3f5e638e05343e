package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-messenger/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Encoding name constants accepted by MessengerSettings
const (
	EncodingNarrow = "narrow"
	EncodingWide   = "wide"
)

// MessengerSettings holds the defaults for key generation and text encoding
type MessengerSettings struct {
	KeyBits  int    `mapstructure:"key_bits" validate:"required,keybits"`
	Encoding string `mapstructure:"encoding" validate:"required,oneof=narrow wide"`
}

// DefaultMessengerSettings returns 2048-bit keys with the narrow encoding
func DefaultMessengerSettings() *MessengerSettings {
	return &MessengerSettings{
		KeyBits:  2048,
		Encoding: EncodingNarrow,
	}
}

// Validate checks that all fields in MessengerSettings are valid
func (s *MessengerSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybits", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register keybits validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for MessengerSettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
