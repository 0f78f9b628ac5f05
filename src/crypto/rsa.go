package crypto

// rsa.go implements textbook RSA over math/big: key pair derivation from two
// random primes, raw modular-exponentiation encryption and decryption, and
// the base-256 packing that turns message text into integers and back.
//
// This is deliberately unpadded, educational RSA. The moduli are ~339 bits
// and there is no OAEP or signature support; do not reuse this for anything
// that needs real security.

import (
	"math/big"
)

const (
	// Bit lengths of the two prime factors. Their product is a ~339-bit
	// modulus, matching the reference key shape.
	primeBitsP = 166
	primeBitsQ = 173

	// defaultPublicExponent is the starting choice for e; it is stepped by
	// +2 until coprime with φ(n).
	defaultPublicExponent = 65537
)

// KeyPair holds a complete RSA key: the public pair (N, E) and the private
// exponent D with D*E ≡ 1 (mod φ(N)).
type KeyPair struct {
	N *big.Int
	E *big.Int
	D *big.Int
}

// GenerateKeyPair derives a fresh key pair: p and q from the OS CSPRNG,
// n = p*q, φ = (p-1)(q-1), e = 65537 stepped to coprimality, d = e⁻¹ mod φ.
func GenerateKeyPair() (*KeyPair, error) {
	p, err := GeneratePrime(primeBitsP)
	if err != nil {
		return nil, err
	}
	q, err := GeneratePrime(primeBitsQ)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, big1),
		new(big.Int).Sub(q, big1),
	)

	e := big.NewInt(defaultPublicExponent)
	gcd := new(big.Int)
	for gcd.GCD(nil, nil, e, phi); gcd.Cmp(big1) != 0; gcd.GCD(nil, nil, e, phi) {
		e.Add(e, big2)
	}

	d := new(big.Int).ModInverse(e, phi)
	return &KeyPair{N: n, E: e, D: d}, nil
}

// Encrypt computes c = m^e mod n. The plaintext must satisfy m < n.
func Encrypt(m, n, e *big.Int) (*big.Int, error) {
	if m.Cmp(n) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return new(big.Int).Exp(m, e, n), nil
}

// Decrypt computes m = c^d mod n.
func Decrypt(c, n, d *big.Int) *big.Int {
	return new(big.Int).Exp(c, d, n)
}

// MessageToInt converts a message string to its integer form: a string that
// parses as base-10 is taken at face value, anything else is packed as
// big-endian base-256 bytes.
func MessageToInt(s string) *big.Int {
	if m, ok := new(big.Int).SetString(s, 10); ok {
		return m
	}
	return PackText(s)
}

// PackText packs the bytes of s into an integer, most significant byte
// first: m = Σ s[i]·256^(len-1-i).
func PackText(s string) *big.Int {
	m := new(big.Int)
	b256 := big.NewInt(256)
	for i := 0; i < len(s); i++ {
		m.Mul(m, b256)
		m.Add(m, big.NewInt(int64(s[i])))
	}
	return m
}

// UnpackText reverses PackText: bytes are peeled off least significant
// first, then reversed. A zero byte terminates the walk, so plaintexts
// containing NUL cannot round-trip; that quirk is kept for compatibility
// with existing ciphertexts.
//
// The second return reports whether the recovered text is non-empty and
// printable: every byte in [32, 126], '\n', or '\t'.
func UnpackText(m *big.Int) (string, bool) {
	t := new(big.Int).Set(m)
	b256 := big.NewInt(256)
	rem := new(big.Int)

	var rev []byte
	for t.Sign() > 0 {
		t.DivMod(t, b256, rem)
		v := rem.Int64()
		if v == 0 {
			break
		}
		rev = append(rev, byte(v))
	}

	buf := make([]byte, len(rev))
	for i, b := range rev {
		buf[len(rev)-1-i] = b
	}

	printable := len(buf) > 0
	for _, b := range buf {
		if (b < 32 || b > 126) && b != '\n' && b != '\t' {
			printable = false
			break
		}
	}
	return string(buf), printable
}
