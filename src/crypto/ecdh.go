package crypto

// ecdh.go provides the Diffie-Hellman layer over the curve arithmetic:
// private scalar sampling, public point derivation, shared-point
// computation, and the blake2b hand-off that turns a shared point into
// symmetric key material.

import (
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// PrivateKeyBits is the size of generated ECDH private scalars.
const PrivateKeyBits = 256

// DefaultCurve returns the built-in toy curve y² = x³ + 5x + 87 over
// F_524287.
func DefaultCurve() Curve {
	return Curve{
		A: big.NewInt(5),
		B: big.NewInt(87),
		M: big.NewInt(524287),
	}
}

// DefaultGenerator returns the base point used with DefaultCurve.
func DefaultGenerator() Point {
	return NewPoint(big.NewInt(3), big.NewInt(47926))
}

// GeneratePrivateKey samples a 256-bit scalar from the OS CSPRNG. The zero
// sample is replaced by 1 so the scalar is never zero. Other samples are
// kept as drawn; one that is a multiple of the generator's order still
// derives the identity.
func GeneratePrivateKey() (*big.Int, error) {
	k, err := RandomBits(PrivateKeyBits)
	if err != nil {
		return nil, err
	}
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k, nil
}

// DerivePublicKey computes priv·g on c.
func DerivePublicKey(c Curve, g Point, priv *big.Int) (Point, error) {
	return c.ScalarMult(g, priv)
}

// SharedPoint computes the Diffie-Hellman shared point priv·pub.
func SharedPoint(c Curve, priv *big.Int, pub Point) (Point, error) {
	return c.ScalarMult(pub, priv)
}

// SharedKey derives 32 bytes of symmetric key material from a shared point:
// blake2b-256 over x‖y, each coordinate left-padded to the byte length of
// the field modulus so the mapping stays injective per curve. The identity
// point hashes its all-zero encoding.
func SharedKey(c Curve, p Point) [32]byte {
	size := (c.M.BitLen() + 7) / 8
	buf := make([]byte, 2*size)
	if !p.Infinite {
		p.X.FillBytes(buf[:size])
		p.Y.FillBytes(buf[size:])
	}
	return blake2b.Sum256(buf)
}
