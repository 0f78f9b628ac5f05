package main

import (
	"os"

	"cryptoclassic/src/cmd"
)

// rsa_decrypt is the split variant of `rsa decrypt`:
// rsa_decrypt <encrypted_hex> <n> <d>.
func main() {
	if err := cmd.RSADecryptCommand(os.Stdout, os.Args[1:]); err != nil {
		cmd.EmitError(os.Stdout, err)
		os.Exit(1)
	}
}
