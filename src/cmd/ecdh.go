package cmd

// ECDH argument plumbing. Curve coefficients and the modulus arrive in
// decimal; generator coordinates, private scalars, and point coordinates in
// hex.

import (
	"fmt"
	"io"
	"math/big"

	"cryptoclassic/src/crypto"
	"cryptoclassic/src/operations"
	"cryptoclassic/src/utils"
)

// ECDHGenerateCommand handles
// `ecdh generate [a b m gx gy [priv_a priv_b]]`. With no arguments the
// built-in curve is used and both scalars are sampled fresh.
func ECDHGenerateCommand(w io.Writer, args []string) error {
	opts := operations.ECDHGenerateOptions{
		Curve:     crypto.DefaultCurve(),
		Generator: crypto.DefaultGenerator(),
	}

	switch len(args) {
	case 0:
	case 5, 7:
		curve, g, err := parseCurveArgs(args[0], args[1], args[2], args[3], args[4])
		if err != nil {
			return err
		}
		opts.Curve, opts.Generator = curve, g
		if len(args) == 7 {
			if opts.PrivA, opts.PrivB, err = parseScalarPair(args[5], args[6]); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("usage: ecdh generate [a b m gx gy [priv_a priv_b]]")
	}

	doc, err := operations.ECDHGenerate(opts)
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

// ECDHExchangeCommand handles
// `ecdh exchange <a> <b> <m> <gx> <gy> <priv_a> <priv_b> [pub_ax pub_ay pub_bx pub_by]`.
// Omitted public points are derived from the private scalars; supplied ones
// are validated against the curve equation.
func ECDHExchangeCommand(w io.Writer, args []string) error {
	if len(args) != 7 && len(args) != 11 {
		return fmt.Errorf("usage: ecdh exchange <a> <b> <m> <gx> <gy> <priv_a> <priv_b> [pub_ax pub_ay pub_bx pub_by]")
	}

	curve, g, err := parseCurveArgs(args[0], args[1], args[2], args[3], args[4])
	if err != nil {
		return err
	}
	privA, privB, err := parseScalarPair(args[5], args[6])
	if err != nil {
		return err
	}

	opts := operations.ECDHExchangeOptions{
		Curve:     curve,
		Generator: g,
		PrivA:     privA,
		PrivB:     privB,
	}
	if len(args) == 11 {
		pubA, err := parsePoint(args[7], args[8])
		if err != nil {
			return err
		}
		pubB, err := parsePoint(args[9], args[10])
		if err != nil {
			return err
		}
		opts.PubA, opts.PubB = &pubA, &pubB
	}

	doc, err := operations.ECDHExchange(opts)
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

// ECDHComputeSharedCommand handles
// `ecdh compute_shared <a> <b> <m> <private_key> <public_x> <public_y>`.
func ECDHComputeSharedCommand(w io.Writer, args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("usage: ecdh compute_shared <a> <b> <m> <private_key> <public_x> <public_y>")
	}

	curve, err := parseCurve(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	priv, err := utils.ParseHex(args[3])
	if err != nil {
		return fmt.Errorf("invalid keys: %w", err)
	}
	pub, err := parsePoint(args[4], args[5])
	if err != nil {
		return err
	}

	doc, err := operations.ECDHComputeShared(operations.ECDHComputeSharedOptions{
		Curve: curve,
		Priv:  priv,
		Pub:   pub,
	})
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

// ECDHRecoverPointCommand handles `ecdh recover_point <a> <b> <m> <x>`,
// lifting an x coordinate onto the curve.
func ECDHRecoverPointCommand(w io.Writer, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: ecdh recover_point <a> <b> <m> <x>")
	}

	curve, err := parseCurve(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	x, err := utils.ParseHex(args[3])
	if err != nil {
		return fmt.Errorf("invalid x coordinate: %w", err)
	}

	doc, err := operations.ECDHRecoverPoint(curve, x)
	if err != nil {
		return err
	}
	return EmitJSON(w, doc)
}

func parseCurve(aStr, bStr, mStr string) (crypto.Curve, error) {
	a, err := utils.ParseDecimal(aStr)
	if err != nil {
		return crypto.Curve{}, fmt.Errorf("invalid curve parameters: %w", err)
	}
	b, err := utils.ParseDecimal(bStr)
	if err != nil {
		return crypto.Curve{}, fmt.Errorf("invalid curve parameters: %w", err)
	}
	m, err := utils.ParseDecimal(mStr)
	if err != nil {
		return crypto.Curve{}, fmt.Errorf("invalid curve parameters: %w", err)
	}
	return crypto.NewCurve(a, b, m)
}

func parseCurveArgs(aStr, bStr, mStr, gxStr, gyStr string) (crypto.Curve, crypto.Point, error) {
	curve, err := parseCurve(aStr, bStr, mStr)
	if err != nil {
		return crypto.Curve{}, crypto.Point{}, err
	}
	g, err := parsePoint(gxStr, gyStr)
	if err != nil {
		return crypto.Curve{}, crypto.Point{}, fmt.Errorf("invalid curve parameters: %w", err)
	}
	return curve, g, nil
}

func parsePoint(xStr, yStr string) (crypto.Point, error) {
	x, err := utils.ParseHex(xStr)
	if err != nil {
		return crypto.Point{}, fmt.Errorf("invalid public keys: %w", err)
	}
	y, err := utils.ParseHex(yStr)
	if err != nil {
		return crypto.Point{}, fmt.Errorf("invalid public keys: %w", err)
	}
	return crypto.NewPoint(x, y), nil
}

func parseScalarPair(aStr, bStr string) (*big.Int, *big.Int, error) {
	privA, err := utils.ParseHex(aStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid private keys: %w", err)
	}
	privB, err := utils.ParseHex(bStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid private keys: %w", err)
	}
	return privA, privB, nil
}
