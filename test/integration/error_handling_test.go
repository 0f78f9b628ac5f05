package integration

// Error surfaces across the command layer: every failure must come back as
// a plain error (the binaries render it as {"error": ...} and exit 1).

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"cryptoclassic/src/cmd"
	"cryptoclassic/src/crypto"
)

func TestRSAErrorSurfaces(t *testing.T) {
	var out bytes.Buffer

	t.Run("missing_args", func(t *testing.T) {
		if err := cmd.RSAEncryptCommand(&out, []string{"65"}); err == nil {
			t.Fatal("expected usage error")
		}
		if err := cmd.RSADecryptCommand(&out, nil); err == nil {
			t.Fatal("expected usage error")
		}
	})

	t.Run("invalid_key_material", func(t *testing.T) {
		if err := cmd.RSAEncryptCommand(&out, []string{"65", "x", "17"}); err == nil {
			t.Fatal("expected parse error for n")
		}
		if err := cmd.RSADecryptCommand(&out, []string{"ae6", "3233", "2x753"}); err == nil {
			t.Fatal("expected parse error for d")
		}
	})

	t.Run("message_too_large", func(t *testing.T) {
		err := cmd.RSAEncryptCommand(&out, []string{"4000", "3233", "17"})
		if !errors.Is(err, crypto.ErrMessageTooLarge) {
			t.Fatalf("want ErrMessageTooLarge, got %v", err)
		}
	})

	t.Run("malformed_ciphertext", func(t *testing.T) {
		err := cmd.RSADecryptCommand(&out, []string{"not-hex!", "3233", "2753"})
		if !errors.Is(err, crypto.ErrInvalidCiphertext) {
			t.Fatalf("want ErrInvalidCiphertext, got %v", err)
		}
	})
}

func TestECDHErrorSurfaces(t *testing.T) {
	var out bytes.Buffer

	t.Run("wrong_arity", func(t *testing.T) {
		for _, args := range [][]string{
			{"5"},
			{"5", "87", "524287", "3"},
			{"5", "87", "524287", "3", "bb36", "2"},
		} {
			if err := cmd.ECDHGenerateCommand(&out, args); err == nil {
				t.Fatalf("expected usage error for %d args", len(args))
			}
		}
		if err := cmd.ECDHExchangeCommand(&out, []string{"5", "87"}); err == nil {
			t.Fatal("expected usage error")
		}
	})

	t.Run("invalid_curve", func(t *testing.T) {
		err := cmd.ECDHGenerateCommand(&out, []string{"5", "0", "524287", "3", "bb36"})
		if !errors.Is(err, crypto.ErrInvalidCurve) {
			t.Fatalf("want ErrInvalidCurve for b=0, got %v", err)
		}
		err = cmd.ECDHGenerateCommand(&out, []string{"5", "87", "1", "3", "bb36"})
		if !errors.Is(err, crypto.ErrInvalidCurve) {
			t.Fatalf("want ErrInvalidCurve for m=1, got %v", err)
		}
	})

	t.Run("off_curve_public", func(t *testing.T) {
		err := cmd.ECDHComputeSharedCommand(&out, []string{"5", "87", "524287", "2", "1", "1"})
		if !errors.Is(err, crypto.ErrPointNotOnCurve) {
			t.Fatalf("want ErrPointNotOnCurve, got %v", err)
		}
	})

	t.Run("no_square_root", func(t *testing.T) {
		// Roughly half of all x coordinates have no lift; scan for one and
		// check the command surfaces the right error.
		curve := crypto.DefaultCurve()
		for x := int64(0); x < 100; x++ {
			if _, err := curve.LiftX(big.NewInt(x)); err == nil {
				continue
			}
			err := cmd.ECDHRecoverPointCommand(&out, []string{"5", "87", "524287", big.NewInt(x).Text(16)})
			if !errors.Is(err, crypto.ErrNoSquareRoot) {
				t.Fatalf("want ErrNoSquareRoot for x=%d, got %v", x, err)
			}
			return
		}
		t.Fatal("no liftless x below 100")
	})
}
