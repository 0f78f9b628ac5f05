package crypto

import "errors"

var (
	// ErrPrimalityCheckFailed is returned when a generated prime candidate
	// fails the Miller-Rabin confirmation pass.
	ErrPrimalityCheckFailed = errors.New("primality test failed")

	// ErrMessageTooLarge is returned when an RSA plaintext does not fit
	// below the modulus.
	ErrMessageTooLarge = errors.New("message too large for key size")

	// ErrInvalidCiphertext is returned when an RSA ciphertext is not valid
	// hexadecimal.
	ErrInvalidCiphertext = errors.New("invalid encrypted message format (expected hex)")

	// ErrNoSquareRoot is returned by SqrtMod when the input is a quadratic
	// non-residue.
	ErrNoSquareRoot = errors.New("no modular square root exists")

	// ErrInvalidCurve is returned for unusable curve parameters, including
	// a modular inverse failure during point arithmetic.
	ErrInvalidCurve = errors.New("invalid curve parameters")

	// ErrPointNotOnCurve is returned when a supplied public point fails the
	// curve equation.
	ErrPointNotOnCurve = errors.New("point is not on the curve")

	// ErrInvalidScalar is returned for malformed (negative) scalars.
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrSharedSecretMismatch indicates the two sides of an exchange
	// disagree, which means a parameter or arithmetic bug.
	ErrSharedSecretMismatch = errors.New("shared secrets do not match")
)
