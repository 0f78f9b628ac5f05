package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoclassic/src/crypto"
	"cryptoclassic/src/types"
)

func TestRSAGenerateCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RSAGenerateCommand(&out, nil))

	var doc types.RSAKeyPairDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.NotEmpty(t, doc.PublicKey.N)
	assert.NotEmpty(t, doc.PublicKey.E)
	assert.NotEmpty(t, doc.PrivateKey.D)
}

func TestRSAGenerateCommandRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, RSAGenerateCommand(&out, []string{"extra"}))
}

func TestRSAEncryptCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RSAEncryptCommand(&out, []string{"65", "3233", "17"}))

	var doc types.RSAEncryptDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.True(t, doc.Success)
	assert.Equal(t, "ae6", doc.Encrypted)
	assert.Equal(t, "65", doc.OriginalNumber)
}

func TestRSAEncryptCommandErrors(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, RSAEncryptCommand(&out, []string{"65"}), "missing args")
	assert.Error(t, RSAEncryptCommand(&out, []string{"65", "not-a-number", "17"}), "bad n")
	assert.ErrorIs(t,
		RSAEncryptCommand(&out, []string{"4000", "3233", "17"}),
		crypto.ErrMessageTooLarge)
}

func TestRSADecryptCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RSADecryptCommand(&out, []string{"ae6", "3233", "2753"}))

	var doc types.RSADecryptDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.True(t, doc.Success)
	assert.Equal(t, "65", doc.DecryptedNumber)
	assert.Equal(t, "A", doc.DecryptedText)
}

func TestRSADecryptCommandBadCiphertext(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t,
		RSADecryptCommand(&out, []string{"zz", "3233", "2753"}),
		crypto.ErrInvalidCiphertext)
}

func TestRSACommandRoundTripText(t *testing.T) {
	var keyOut bytes.Buffer
	require.NoError(t, RSAGenerateCommand(&keyOut, nil))
	var keys types.RSAKeyPairDocument
	require.NoError(t, json.Unmarshal(keyOut.Bytes(), &keys))

	var encOut bytes.Buffer
	require.NoError(t, RSAEncryptCommand(&encOut,
		[]string{"HELLO", keys.PublicKey.N, keys.PublicKey.E}))
	var enc types.RSAEncryptDocument
	require.NoError(t, json.Unmarshal(encOut.Bytes(), &enc))
	assert.Equal(t, "310400273487", enc.OriginalNumber)

	var decOut bytes.Buffer
	require.NoError(t, RSADecryptCommand(&decOut,
		[]string{enc.Encrypted, keys.PrivateKey.N, keys.PrivateKey.D}))
	var dec types.RSADecryptDocument
	require.NoError(t, json.Unmarshal(decOut.Bytes(), &dec))
	assert.Equal(t, "HELLO", dec.DecryptedText)
}

func TestEmitErrorShape(t *testing.T) {
	var out bytes.Buffer
	EmitError(&out, assert.AnError)

	var doc types.ErrorDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, assert.AnError.Error(), doc.Error)
}
