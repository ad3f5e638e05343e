package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-messenger/internal/app"
	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"

	"github.com/spf13/cobra"
)

// EncryptCmd encrypts a message for the public key (n, e) and prints the ciphertext
func (commandHandler *MessengerCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	modulus, err := bigIntFlag(cmd, "modulus")
	if err != nil {
		return err
	}
	exponent, err := bigIntFlag(cmd, "exponent")
	if err != nil {
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	encoding, err := encodingFlag(cmd)
	if err != nil {
		return err
	}

	sender, err := app.NewSenderForPublicKey(cryptoalg.PublicKey{Modulus: modulus, Exponent: exponent}, commandHandler.codec, commandHandler.logger)
	if err != nil {
		return err
	}

	ciphertext, err := sender.Encrypt(message, encoding)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// DecryptCmd decrypts a ciphertext with the key triple (n, e, d) and prints the message
func (commandHandler *MessengerCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	modulus, err := bigIntFlag(cmd, "modulus")
	if err != nil {
		return err
	}
	publicExponent, err := bigIntFlag(cmd, "public-exponent")
	if err != nil {
		return err
	}
	privateExponent, err := bigIntFlag(cmd, "private-exponent")
	if err != nil {
		return err
	}
	ciphertext, err := bigIntFlag(cmd, "ciphertext")
	if err != nil {
		return err
	}
	encoding, err := encodingFlag(cmd)
	if err != nil {
		return err
	}

	keyPair, err := cryptoalg.NewKeyPair(modulus, publicExponent, privateExponent)
	if err != nil {
		return err
	}

	receiver, err := app.NewReceiverFromKeyPair(keyPair, commandHandler.codec, commandHandler.logger)
	if err != nil {
		return err
	}

	message, err := receiver.Decrypt(ciphertext, encoding)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

// RoundTripCmd generates a fresh key pair, encrypts the message and decrypts it again
func (commandHandler *MessengerCommandHandler) RoundTripCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	encoding, err := encodingFlag(cmd)
	if err != nil {
		return err
	}

	receiver, err := app.NewReceiver(commandHandler.generator, keySize, commandHandler.codec, commandHandler.logger)
	if err != nil {
		return err
	}

	ciphertext, err := receiver.NewSender().Encrypt(message, encoding)
	if err != nil {
		return err
	}

	decrypted, err := receiver.Decrypt(ciphertext, encoding)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ciphertext: %s\n", ciphertext)
	fmt.Fprintf(out, "message: %s\n", decrypted)
	return nil
}

func (commandHandler *MessengerCommandHandler) registerMessageCommands(rootCmd *cobra.Command) {
	defaultEncoding := commandHandler.settings.Encoding

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a public key",
		RunE:  commandHandler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("modulus", "", "", "Public modulus n as a decimal integer")
	encryptCmd.Flags().StringP("exponent", "", "", "Public exponent e as a decimal integer")
	encryptCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptCmd.Flags().StringP("encoding", "", defaultEncoding, "Text encoding (narrow or wide)")
	_ = encryptCmd.MarkFlagRequired("modulus")
	_ = encryptCmd.MarkFlagRequired("exponent")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a key triple",
		RunE:  commandHandler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("modulus", "", "", "Modulus n as a decimal integer")
	decryptCmd.Flags().StringP("public-exponent", "", "", "Public exponent e as a decimal integer")
	decryptCmd.Flags().StringP("private-exponent", "", "", "Private exponent d as a decimal integer")
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext as a decimal integer")
	decryptCmd.Flags().StringP("encoding", "", defaultEncoding, "Text encoding (narrow or wide)")
	_ = decryptCmd.MarkFlagRequired("modulus")
	_ = decryptCmd.MarkFlagRequired("public-exponent")
	_ = decryptCmd.MarkFlagRequired("private-exponent")
	_ = decryptCmd.MarkFlagRequired("ciphertext")
	rootCmd.AddCommand(decryptCmd)

	var roundTripCmd = &cobra.Command{
		Use:   "roundtrip",
		Short: "Generate a key pair, encrypt a message and decrypt it again",
		RunE:  commandHandler.RoundTripCmd,
	}
	roundTripCmd.Flags().IntP("key-size", "", commandHandler.settings.KeyBits, "Approximate modulus size in bits")
	roundTripCmd.Flags().StringP("message", "", "", "Message to send")
	roundTripCmd.Flags().StringP("encoding", "", defaultEncoding, "Text encoding (narrow or wide)")
	rootCmd.AddCommand(roundTripCmd)
}
