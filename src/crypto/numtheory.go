package crypto

// numtheory.go holds the number-theoretic primitives shared by the RSA and
// ECDH engines: random sampling, the Legendre symbol, modular square roots
// via Tonelli-Shanks, and prime generation by next-prime search with a
// Miller-Rabin confirmation pass.
//
// Every function works on math/big integers and canonicalizes modular
// results into [0, m). Nothing here performs I/O; randomness always comes
// from crypto/rand.

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// millerRabinRounds is the confirmation round count for generated primes.
// 25 rounds bounds the error probability by 4^-25.
const millerRabinRounds = 25

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// RandomBits returns a uniform random integer of at most bits bits, read
// from the OS CSPRNG. The top bit is not forced; callers that need an exact
// bit length set it themselves.
func RandomBits(bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("bit count must be positive, got %d", bits)
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("entropy source failed: %w", err)
	}
	n := new(big.Int).SetBytes(buf)
	// Mask away the excess high bits of the final partial byte.
	mask := new(big.Int).Lsh(big1, uint(bits))
	mask.Sub(mask, big1)
	return n.And(n, mask), nil
}

// Legendre computes the Legendre symbol (a/p) for an odd prime p:
// +1 when a is a non-zero quadratic residue mod p, -1 when it is a
// non-residue, 0 when p divides a.
func Legendre(a, p *big.Int) int {
	exp := new(big.Int).Sub(p, big1)
	exp.Rsh(exp, 1)
	sym := new(big.Int).Exp(a, exp, p)
	switch {
	case sym.Sign() == 0:
		return 0
	case sym.Cmp(big1) == 0:
		return 1
	default:
		return -1
	}
}

// SqrtMod returns a square root of a modulo the odd prime p, in [0, p).
// When p ≡ 3 (mod 4) it uses the exponentiation shortcut; otherwise it runs
// the general Tonelli-Shanks loop. Either root may be returned; callers
// needing a specific parity must select it themselves.
//
// ErrNoSquareRoot is returned when a is a quadratic non-residue.
func SqrtMod(a, p *big.Int) (*big.Int, error) {
	a = new(big.Int).Mod(a, p)
	if a.Sign() == 0 {
		return new(big.Int), nil
	}
	if Legendre(a, p) != 1 {
		return nil, ErrNoSquareRoot
	}

	// Fast path: p ≡ 3 (mod 4), root = a^((p+1)/4).
	if p.Bit(0) == 1 && p.Bit(1) == 1 {
		exp := new(big.Int).Add(p, big1)
		exp.Rsh(exp, 2)
		return new(big.Int).Exp(a, exp, p), nil
	}

	// Write p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, big1)
	s := uint(0)
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Smallest quadratic non-residue z >= 2. Deterministic scan order keeps
	// the output stable for a given modulus.
	z := new(big.Int).Set(big2)
	for Legendre(z, p) != -1 {
		z.Add(z, big1)
	}

	c := new(big.Int).Exp(z, q, p)
	rExp := new(big.Int).Add(q, big1)
	rExp.Rsh(rExp, 1)
	r := new(big.Int).Exp(a, rExp, p)
	t := new(big.Int).Exp(a, q, p)
	e := s

	tmp := new(big.Int)
	for t.Cmp(big1) != 0 {
		// Least i in [1, e) with t^(2^i) = 1.
		i := uint(1)
		tmp.Set(t)
		for ; i < e; i++ {
			tmp.Mul(tmp, tmp)
			tmp.Mod(tmp, p)
			if tmp.Cmp(big1) == 0 {
				break
			}
		}

		if i >= e {
			// Unreachable for a prime modulus; a composite p lands here
			// instead of looping forever.
			return nil, ErrNoSquareRoot
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(big1, e-i-1), p)
		r.Mul(r, b)
		r.Mod(r, p)
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		e = i
	}
	return r, nil
}

// NextPrime returns the smallest probable prime >= n.
func NextPrime(n *big.Int) *big.Int {
	p := new(big.Int).Set(n)
	if p.Cmp(big2) <= 0 {
		return new(big.Int).Set(big2)
	}
	if p.Bit(0) == 0 {
		p.Add(p, big1)
	}
	for !p.ProbablyPrime(millerRabinRounds) {
		p.Add(p, big2)
	}
	return p
}

// GeneratePrime produces a random prime of exactly bits bits: a uniform
// candidate with its top and bottom bits forced, advanced to the next prime
// and confirmed with Miller-Rabin.
func GeneratePrime(bits int) (*big.Int, error) {
	candidate, err := RandomBits(bits)
	if err != nil {
		return nil, err
	}
	candidate.SetBit(candidate, bits-1, 1)
	candidate.SetBit(candidate, 0, 1)

	p := NextPrime(candidate)
	if !p.ProbablyPrime(millerRabinRounds) {
		return nil, ErrPrimalityCheckFailed
	}
	return p, nil
}
