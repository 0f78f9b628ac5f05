package main

import (
	"os"

	"cryptoclassic/src/cmd"
)

// rsa_keygen is the split variant of `rsa generate`: no arguments, key pair
// JSON on stdout.
func main() {
	if err := cmd.RSAGenerateCommand(os.Stdout, os.Args[1:]); err != nil {
		cmd.EmitError(os.Stdout, err)
		os.Exit(1)
	}
}
