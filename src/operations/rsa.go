package operations

// RSA command bodies. Each function takes already-parsed arguments and
// returns the JSON document the binary will print; radix conversion of the
// incoming strings lives in src/cmd, the math in src/crypto.

import (
	"math/big"

	"cryptoclassic/src/crypto"
	"cryptoclassic/src/types"
	"cryptoclassic/src/utils"
)

// RSAEncryptOptions carries a message plus the public key (n, e).
type RSAEncryptOptions struct {
	Message string
	N       *big.Int
	E       *big.Int
}

// RSADecryptOptions carries a parsed ciphertext plus the private key (n, d).
type RSADecryptOptions struct {
	Ciphertext *big.Int
	N          *big.Int
	D          *big.Int
}

// RSAGenerate derives a fresh key pair and renders it as decimal strings.
func RSAGenerate() (*types.RSAKeyPairDocument, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	n := utils.FormatDecimal(kp.N)
	return &types.RSAKeyPairDocument{
		PublicKey:  types.RSAKeyDocument{N: n, E: utils.FormatDecimal(kp.E)},
		PrivateKey: types.RSAKeyDocument{N: n, D: utils.FormatDecimal(kp.D)},
	}, nil
}

// RSAEncrypt converts the message to its integer form (decimal literal or
// base-256 packed text) and encrypts it under the public key.
func RSAEncrypt(opts RSAEncryptOptions) (*types.RSAEncryptDocument, error) {
	m := crypto.MessageToInt(opts.Message)
	c, err := crypto.Encrypt(m, opts.N, opts.E)
	if err != nil {
		return nil, err
	}
	return &types.RSAEncryptDocument{
		Success:        true,
		Encrypted:      utils.FormatHex(c),
		OriginalNumber: utils.FormatDecimal(m),
		OriginalText:   opts.Message,
	}, nil
}

// RSADecrypt recovers the plaintext integer and, when the unpacked bytes
// are printable text, the plaintext string as well.
func RSADecrypt(opts RSADecryptOptions) (*types.RSADecryptDocument, error) {
	m := crypto.Decrypt(opts.Ciphertext, opts.N, opts.D)
	doc := &types.RSADecryptDocument{
		Success:         true,
		DecryptedNumber: utils.FormatDecimal(m),
	}
	if text, printable := crypto.UnpackText(m); printable {
		doc.DecryptedText = text
	}
	return doc, nil
}
