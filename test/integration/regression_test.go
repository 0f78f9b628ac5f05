package integration

// Pinned end-to-end vectors, exercised through the same command layer the
// binaries use so the wire radices are covered too.

import (
	"bytes"
	"encoding/json"
	"testing"

	"cryptoclassic/src/cmd"
	"cryptoclassic/src/types"
)

// TestTinyKeyVector pins the classic p=61, q=53 example: encrypting 65
// under (3233, 17) yields 2790 = 0xae6, and 2753 decrypts it back.
func TestTinyKeyVector(t *testing.T) {
	var out bytes.Buffer
	if err := cmd.RSAEncryptCommand(&out, []string{"65", "3233", "17"}); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	var enc types.RSAEncryptDocument
	if err := json.Unmarshal(out.Bytes(), &enc); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if enc.Encrypted != "ae6" {
		t.Errorf("ciphertext: want ae6 got %s", enc.Encrypted)
	}
	if enc.OriginalNumber != "65" {
		t.Errorf("original number: want 65 got %s", enc.OriginalNumber)
	}

	out.Reset()
	if err := cmd.RSADecryptCommand(&out, []string{"ae6", "3233", "2753"}); err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	var dec types.RSADecryptDocument
	if err := json.Unmarshal(out.Bytes(), &dec); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if dec.DecryptedNumber != "65" {
		t.Errorf("decrypted number: want 65 got %s", dec.DecryptedNumber)
	}
	if dec.DecryptedText != "A" {
		t.Errorf("decrypted text: want A got %q", dec.DecryptedText)
	}
}

// TestDefaultCurveVector pins the reference curve exchange with priv_a=2,
// priv_b=3: both sides must land on 6·G.
func TestDefaultCurveVector(t *testing.T) {
	var out bytes.Buffer
	args := []string{"5", "87", "524287", "3", "bb36", "2", "3"}
	if err := cmd.ECDHExchangeCommand(&out, args); err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	var doc types.ECDHExchangeDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !doc.Success {
		t.Fatal("exchange not successful")
	}

	// compute_shared from Alice's side must reproduce the same point.
	out.Reset()
	csArgs := []string{"5", "87", "524287", "2",
		doc.Bob.PublicKey.X, doc.Bob.PublicKey.Y}
	if err := cmd.ECDHComputeSharedCommand(&out, csArgs); err != nil {
		t.Fatalf("compute_shared failed: %v", err)
	}
	var cs types.ECDHComputeSharedDocument
	if err := json.Unmarshal(out.Bytes(), &cs); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if cs.SharedSecret != doc.SharedSecret {
		t.Errorf("shared secret mismatch: %v vs %v", cs.SharedSecret, doc.SharedSecret)
	}
}

// TestRecoverPointVector lifts the generator's x coordinate back onto the
// default curve.
func TestRecoverPointVector(t *testing.T) {
	var out bytes.Buffer
	if err := cmd.ECDHRecoverPointCommand(&out, []string{"5", "87", "524287", "3"}); err != nil {
		t.Fatalf("recover_point failed: %v", err)
	}
	var doc types.ECDHRecoverPointDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	// y is either bb36 (47926) or m - 47926 = 476361 = 744c9.
	if doc.Point.Y != "bb36" && doc.Point.Y != "744c9" {
		t.Errorf("unexpected root: %s", doc.Point.Y)
	}
}

// TestControlBytesAreEscaped feeds a message with an embedded control byte
// through encryption and checks the emitted JSON survives a strict decode.
func TestControlBytesAreEscaped(t *testing.T) {
	var out bytes.Buffer
	message := "line1\nline2\ttab\x01end"
	n := "1000000000000000000000000000000000000000000000000000000000000"
	if err := cmd.RSAEncryptCommand(&out, []string{message, n, "17"}); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	var enc types.RSAEncryptDocument
	if err := json.Unmarshal(out.Bytes(), &enc); err != nil {
		t.Fatalf("emitted JSON does not decode: %v", err)
	}
	if enc.OriginalText != message {
		t.Errorf("originalText did not round-trip: %q", enc.OriginalText)
	}
}
