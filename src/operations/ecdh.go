package operations

// ECDH command bodies: key generation, the full two-party exchange with
// cross-verification, single-sided shared-secret computation, and point
// recovery from an x coordinate.

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"cryptoclassic/src/crypto"
	"cryptoclassic/src/types"
	"cryptoclassic/src/utils"
)

// ECDHGenerateOptions selects a curve and optionally pins both private
// scalars; nil scalars are sampled from the OS CSPRNG.
type ECDHGenerateOptions struct {
	Curve     crypto.Curve
	Generator crypto.Point
	PrivA     *big.Int
	PrivB     *big.Int
}

// ECDHExchangeOptions carries both private scalars and, optionally, both
// public points. Missing points are derived from the scalars; supplied
// points must lie on the curve.
type ECDHExchangeOptions struct {
	Curve     crypto.Curve
	Generator crypto.Point
	PrivA     *big.Int
	PrivB     *big.Int
	PubA      *crypto.Point
	PubB      *crypto.Point
}

// ECDHComputeSharedOptions carries one private scalar and the remote
// public point.
type ECDHComputeSharedOptions struct {
	Curve crypto.Curve
	Priv  *big.Int
	Pub   crypto.Point
}

// ECDHGenerate samples (or accepts) two private scalars and derives both
// public points.
func ECDHGenerate(opts ECDHGenerateOptions) (*types.ECDHGenerateDocument, error) {
	privA, privB := opts.PrivA, opts.PrivB
	var err error
	if privA == nil {
		if privA, err = crypto.GeneratePrivateKey(); err != nil {
			return nil, err
		}
	}
	if privB == nil {
		if privB, err = crypto.GeneratePrivateKey(); err != nil {
			return nil, err
		}
	}

	pubA, err := crypto.DerivePublicKey(opts.Curve, opts.Generator, privA)
	if err != nil {
		return nil, err
	}
	pubB, err := crypto.DerivePublicKey(opts.Curve, opts.Generator, privB)
	if err != nil {
		return nil, err
	}

	return &types.ECDHGenerateDocument{
		Success: true,
		Action:  "generate",
		Curve:   curveDocument(opts.Curve, opts.Generator),
		Alice:   partyDocument(privA, pubA),
		Bob:     partyDocument(privB, pubB),
	}, nil
}

// ECDHExchange derives or validates both public points, computes the shared
// point from each side, and cross-checks the results. A mismatch means the
// parameters or the arithmetic are broken.
func ECDHExchange(opts ECDHExchangeOptions) (*types.ECDHExchangeDocument, error) {
	pubA, err := resolvePublic(opts.Curve, opts.Generator, opts.PrivA, opts.PubA)
	if err != nil {
		return nil, err
	}
	pubB, err := resolvePublic(opts.Curve, opts.Generator, opts.PrivB, opts.PubB)
	if err != nil {
		return nil, err
	}

	sharedA, err := crypto.SharedPoint(opts.Curve, opts.PrivA, pubB)
	if err != nil {
		return nil, err
	}
	sharedB, err := crypto.SharedPoint(opts.Curve, opts.PrivB, pubA)
	if err != nil {
		return nil, err
	}
	if !sharedA.Equal(sharedB) {
		return nil, crypto.ErrSharedSecretMismatch
	}

	key := crypto.SharedKey(opts.Curve, sharedA)
	return &types.ECDHExchangeDocument{
		Success:      true,
		Action:       "exchange",
		Curve:        curveDocument(opts.Curve, opts.Generator),
		Alice:        partyDocument(opts.PrivA, pubA),
		Bob:          partyDocument(opts.PrivB, pubB),
		SharedSecret: pointDocument(sharedA),
		SharedKey:    hex.EncodeToString(key[:]),
	}, nil
}

// ECDHComputeShared computes priv·pub for one party.
func ECDHComputeShared(opts ECDHComputeSharedOptions) (*types.ECDHComputeSharedDocument, error) {
	if !opts.Curve.IsOnCurve(opts.Pub) {
		return nil, crypto.ErrPointNotOnCurve
	}
	shared, err := crypto.SharedPoint(opts.Curve, opts.Priv, opts.Pub)
	if err != nil {
		return nil, err
	}
	key := crypto.SharedKey(opts.Curve, shared)
	return &types.ECDHComputeSharedDocument{
		Success:      true,
		Action:       "compute_shared",
		SharedSecret: pointDocument(shared),
		SharedKey:    hex.EncodeToString(key[:]),
	}, nil
}

// ECDHRecoverPoint lifts an x coordinate onto the curve via a modular
// square root.
func ECDHRecoverPoint(c crypto.Curve, x *big.Int) (*types.ECDHRecoverPointDocument, error) {
	p, err := c.LiftX(x)
	if err != nil {
		return nil, fmt.Errorf("no curve point with this x coordinate: %w", err)
	}
	return &types.ECDHRecoverPointDocument{
		Success: true,
		Action:  "recover_point",
		Point:   pointDocument(p),
	}, nil
}

// resolvePublic derives the public point when none was supplied, and
// otherwise checks the supplied point actually lies on the curve.
func resolvePublic(c crypto.Curve, g crypto.Point, priv *big.Int, pub *crypto.Point) (crypto.Point, error) {
	if pub == nil {
		return crypto.DerivePublicKey(c, g, priv)
	}
	if !c.IsOnCurve(*pub) {
		return crypto.Point{}, crypto.ErrPointNotOnCurve
	}
	return *pub, nil
}

func curveDocument(c crypto.Curve, g crypto.Point) types.CurveDocument {
	return types.CurveDocument{
		A:         utils.FormatDecimal(c.A),
		B:         utils.FormatDecimal(c.B),
		M:         utils.FormatDecimal(c.M),
		Generator: pointDocument(g),
	}
}

func partyDocument(priv *big.Int, pub crypto.Point) types.PartyDocument {
	return types.PartyDocument{
		PrivateKey: utils.FormatHex(priv),
		PublicKey:  pointDocument(pub),
	}
}

// pointDocument renders a point with hex coordinates. The identity keeps
// the legacy (0, 0) wire form, which curve validation keeps collision-free.
func pointDocument(p crypto.Point) types.PointDocument {
	if p.Infinite {
		return types.PointDocument{X: "0", Y: "0"}
	}
	return types.PointDocument{X: utils.FormatHex(p.X), Y: utils.FormatHex(p.Y)}
}
