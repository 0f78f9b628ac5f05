package cmd

// RSA argument plumbing. Each command validates positional arguments,
// converts them in their declared radix, runs the operation, and prints the
// result document. The same three commands back both the combined rsa
// binary and the rsa_keygen / rsa_encrypt / rsa_decrypt split variants.

import (
	"fmt"
	"io"

	"cryptoclassic/src/crypto"
	"cryptoclassic/src/operations"
	"cryptoclassic/src/utils"
)

// RSAGenerateCommand handles `rsa generate` / `rsa_keygen`. It takes no
// arguments.
func RSAGenerateCommand(w io.Writer, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: rsa generate")
	}
	doc, err := operations.RSAGenerate()
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

// RSAEncryptCommand handles `rsa encrypt <message> <n> <e>` /
// `rsa_encrypt`. n and e are decimal.
func RSAEncryptCommand(w io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: rsa encrypt <message> <n> <e>")
	}
	n, err := utils.ParseDecimal(args[1])
	if err != nil {
		return fmt.Errorf("invalid public key format: %w", err)
	}
	e, err := utils.ParseDecimal(args[2])
	if err != nil {
		return fmt.Errorf("invalid public key format: %w", err)
	}

	doc, err := operations.RSAEncrypt(operations.RSAEncryptOptions{
		Message: args[0],
		N:       n,
		E:       e,
	})
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

// RSADecryptCommand handles `rsa decrypt <ciphertext_hex> <n> <d>` /
// `rsa_decrypt`. The ciphertext is hex, n and d are decimal.
func RSADecryptCommand(w io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: rsa decrypt <encrypted_hex> <n> <d>")
	}
	c, err := utils.ParseHex(args[0])
	if err != nil {
		return crypto.ErrInvalidCiphertext
	}
	n, err := utils.ParseDecimal(args[1])
	if err != nil {
		return fmt.Errorf("invalid private key format: %w", err)
	}
	d, err := utils.ParseDecimal(args[2])
	if err != nil {
		return fmt.Errorf("invalid private key format: %w", err)
	}

	doc, err := operations.RSADecrypt(operations.RSADecryptOptions{
		Ciphertext: c,
		N:          n,
		D:          d,
	})
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}
