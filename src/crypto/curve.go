package crypto

// curve.go implements affine point arithmetic on short-Weierstrass curves
// y² = x³ + ax + b over a prime field. The group identity is carried as a
// distinct flag on Point rather than the (0, 0) sentinel of older encodings,
// so it can never collide with a legitimate coordinate pair.

import (
	"fmt"
	"math/big"
)

// Curve holds short-Weierstrass parameters over the prime field F_m.
// Construct values with NewCurve so a and b are canonical residues.
type Curve struct {
	A *big.Int
	B *big.Int
	M *big.Int
}

// Point is an affine curve point, or the group identity when Infinite is
// set. X and Y are canonical residues in [0, m) for affine points and nil
// for the identity.
type Point struct {
	X        *big.Int
	Y        *big.Int
	Infinite bool
}

// Infinity returns the group identity.
func Infinity() Point {
	return Point{Infinite: true}
}

// NewPoint builds an affine point from the given coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Equal reports whether two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.Infinite || q.Infinite {
		return p.Infinite == q.Infinite
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// NewCurve validates and canonicalizes curve parameters. The modulus must
// exceed 2 and b must not vanish mod m: with b ≡ 0 the point (0, 0) lies on
// the curve and would be indistinguishable from the identity in the wire
// encoding.
func NewCurve(a, b, m *big.Int) (Curve, error) {
	if m.Cmp(big2) <= 0 {
		return Curve{}, fmt.Errorf("%w: modulus must exceed 2", ErrInvalidCurve)
	}
	ca := new(big.Int).Mod(a, m)
	cb := new(big.Int).Mod(b, m)
	if cb.Sign() == 0 {
		return Curve{}, fmt.Errorf("%w: b must be nonzero mod m", ErrInvalidCurve)
	}
	return Curve{A: ca, B: cb, M: new(big.Int).Set(m)}, nil
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod m). The
// identity is on every curve.
func (c Curve) IsOnCurve(p Point) bool {
	if p.Infinite {
		return true
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, c.M)
	rhs := c.rhs(p.X)
	return lhs.Cmp(rhs) == 0
}

// rhs evaluates x³ + ax + b mod m.
func (c Curve) rhs(x *big.Int) *big.Int {
	r := new(big.Int).Exp(x, big3, c.M)
	ax := new(big.Int).Mul(c.A, x)
	r.Add(r, ax)
	r.Add(r, c.B)
	return r.Mod(r, c.M)
}

// Add computes the group sum of p and q.
//
// The cases, in order: either operand being the identity, mutually inverse
// points (same x, opposite y), the tangent (doubling) slope, and the chord
// slope. A vanishing slope denominator means the operands were not a valid
// pair of curve points for these parameters.
func (c Curve) Add(p, q Point) (Point, error) {
	if p.Infinite {
		return q, nil
	}
	if q.Infinite {
		return p, nil
	}

	if p.X.Cmp(q.X) == 0 {
		sum := new(big.Int).Add(p.Y, q.Y)
		sum.Mod(sum, c.M)
		if sum.Sign() == 0 {
			return Infinity(), nil
		}
	}

	num := new(big.Int)
	den := new(big.Int)
	if p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 {
		// Tangent: λ = (3x² + a) / 2y.
		num.Mul(p.X, p.X)
		num.Mul(num, big3)
		num.Add(num, c.A)
		den.Lsh(p.Y, 1)
	} else {
		// Chord: λ = (y₂ - y₁) / (x₂ - x₁).
		num.Sub(q.Y, p.Y)
		den.Sub(q.X, p.X)
	}

	inv := new(big.Int).ModInverse(den, c.M)
	if inv == nil {
		return Point{}, fmt.Errorf("%w: slope denominator is not invertible", ErrInvalidCurve)
	}
	lam := num.Mul(num, inv)
	lam.Mod(lam, c.M)

	x := new(big.Int).Mul(lam, lam)
	x.Sub(x, p.X)
	x.Sub(x, q.X)
	x.Mod(x, c.M)

	y := new(big.Int).Sub(p.X, x)
	y.Mul(y, lam)
	y.Sub(y, p.Y)
	y.Mod(y, c.M)

	return Point{X: x, Y: y}, nil
}

// ScalarMult computes k·p by LSB-first double-and-add. The zero scalar
// yields the identity; negative scalars are rejected.
func (c Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		return Point{}, fmt.Errorf("%w: scalar must be non-negative", ErrInvalidScalar)
	}

	result := Infinity()
	base := p
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result, err = c.Add(result, base)
			if err != nil {
				return Point{}, err
			}
		}
		base, err = c.Add(base, base)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}

// LiftX recovers a point with the given x coordinate by taking a modular
// square root of x³ + ax + b. Either root may come back; ErrNoSquareRoot
// means no point with this x exists on the curve.
func (c Curve) LiftX(x *big.Int) (Point, error) {
	cx := new(big.Int).Mod(x, c.M)
	y, err := SqrtMod(c.rhs(cx), c.M)
	if err != nil {
		return Point{}, err
	}
	return Point{X: cx, Y: y}, nil
}
