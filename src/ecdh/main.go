package main

import (
	"fmt"
	"os"

	"cryptoclassic/src/cmd"
)

func main() {
	if len(os.Args) < 2 {
		cmd.EmitError(os.Stdout, fmt.Errorf("usage: ecdh <action> [parameters]"))
		os.Exit(1)
	}

	action := os.Args[1]
	args := os.Args[2:]

	var err error
	switch action {
	case "generate":
		err = cmd.ECDHGenerateCommand(os.Stdout, args)
	case "exchange":
		err = cmd.ECDHExchangeCommand(os.Stdout, args)
	case "compute_shared":
		err = cmd.ECDHComputeSharedCommand(os.Stdout, args)
	case "recover_point":
		err = cmd.ECDHRecoverPointCommand(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		cmd.EmitError(os.Stdout, fmt.Errorf("unknown action: use generate, exchange, compute_shared, or recover_point"))
		os.Exit(1)
	}

	if err != nil {
		cmd.EmitError(os.Stdout, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "ecdh - elliptic-curve Diffie-Hellman over a short-Weierstrass curve\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  ecdh generate [a b m gx gy [priv_a priv_b]]\n")
	fmt.Fprintf(os.Stderr, "  ecdh exchange <a> <b> <m> <gx> <gy> <priv_a> <priv_b> [pub_ax pub_ay pub_bx pub_by]\n")
	fmt.Fprintf(os.Stderr, "  ecdh compute_shared <a> <b> <m> <private_key> <public_x> <public_y>\n")
	fmt.Fprintf(os.Stderr, "  ecdh recover_point <a> <b> <m> <x>\n\n")
	fmt.Fprintf(os.Stderr, "a, b and m are decimal; scalars and coordinates are unprefixed hex.\n")
	fmt.Fprintf(os.Stderr, "Output is a single JSON object on stdout.\n")
}
